// Command seed loads a TMDB-style catalog dump into the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"cinetalk/internal/biz"
	"cinetalk/internal/conf"
	"cinetalk/internal/data"
	"cinetalk/internal/pkg/zlog"

	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
)

var (
	flagconf string
	flagfile string
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, eg: -conf config.yaml")
	flag.StringVar(&flagfile, "file", "movies.json", "catalog dump to import")
}

func main() {
	flag.Parse()
	c := config.New(
		config.WithSource(
			env.NewSource("CINETALK_"),
			file.NewSource(flagconf),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}
	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}

	var opts []zlog.Option
	if bc.Log != nil {
		opts = append(opts, zlog.WithLevel(bc.Log.Level), zlog.WithFormat(bc.Log.Format))
	}
	logger := log.With(zlog.New(opts...), "ts", log.DefaultTimestamp, "caller", log.DefaultCaller)
	helper := log.NewHelper(logger)

	if err := run(bc.Data, logger); err != nil {
		helper.Fatalf("seed: %v", err)
	}
}

func run(c *conf.Data, logger log.Logger) error {
	f, err := os.Open(flagfile)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	genres, movies, err := parseCatalog(f)
	if err != nil {
		return err
	}

	d, cleanup, err := data.NewData(c, logger)
	if err != nil {
		return fmt.Errorf("open data: %w", err)
	}
	defer cleanup()

	uc := biz.NewMovieUseCase(data.NewMovieRepo(d, logger), logger)
	return uc.ImportCatalog(context.Background(), genres, movies)
}
