package v1

import (
	"mime"
	"net/url"

	"github.com/go-kratos/kratos/v2/errors"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

// maxFormMemory is the part of a multipart body kept in memory; larger files
// spill to temporary files.
const maxFormMemory = 8 << 20

const reasonCodec = "CODEC"

func mediaType(ctx khttp.Context) string {
	mt, _, err := mime.ParseMediaType(ctx.Request().Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

// bindProfileUpdate decodes a profile patch from multipart, urlencoded or
// JSON bodies. Form fields are only set when their key is present.
func bindProfileUpdate(ctx khttp.Context, in *UpdateProfileRequest) error {
	r := ctx.Request()
	switch mediaType(ctx) {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return errors.BadRequest(reasonCodec, err.Error())
		}
		in.setFormValues(r.MultipartForm.Value)
		if files := r.MultipartForm.File["profile_picture"]; len(files) > 0 {
			in.ProfilePicture = files[0]
		}
		return nil
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return errors.BadRequest(reasonCodec, err.Error())
		}
		in.setFormValues(r.PostForm)
		return nil
	default:
		return ctx.Bind(in)
	}
}

func (in *UpdateProfileRequest) setFormValues(values url.Values) {
	fields := map[string]**string{
		"username":   &in.Username,
		"email":      &in.Email,
		"first_name": &in.FirstName,
		"last_name":  &in.LastName,
		"bio":        &in.Bio,
		"address":    &in.Address,
	}
	for key, dst := range fields {
		if v, ok := values[key]; ok && len(v) > 0 {
			value := v[0]
			*dst = &value
		}
	}
}

func bindSceneLocation(ctx khttp.Context, in *SceneLocationRequest) error {
	if mediaType(ctx) == "multipart/form-data" {
		r := ctx.Request()
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return errors.BadRequest(reasonCodec, err.Error())
		}
		in.SceneDescription = r.FormValue("scene_description")
		return nil
	}
	return ctx.Bind(in)
}
