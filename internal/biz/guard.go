package biz

// Ownership guards. Every mutating use case calls the guard of its resource
// before touching the store; a mismatch is always Forbidden.

func guardArticle(callerID uint, article *Article) error {
	if article.UserID != callerID {
		return ErrArticleForbidden
	}
	return nil
}

func guardComment(callerID uint, comment *Comment) error {
	if comment.UserID != callerID {
		return ErrCommentForbidden
	}
	return nil
}

func guardProfile(callerID uint, user *User) error {
	if user.ID != callerID {
		return ErrProfileForbidden
	}
	return nil
}
