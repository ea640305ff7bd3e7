package content

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	CodeNotFound             = "POST_NOT_FOUND"
	CodeMalformedFrontMatter = "MALFORMED_FRONT_MATTER"
	CodeTransformFailed      = "MARKDOWN_TRANSFORM_FAILED"
	CodeDuplicateSlug        = "DUPLICATE_SLUG"
)

var (
	ErrNotFound             = errors.New("post not found")
	ErrMalformedFrontMatter = errors.New("malformed front-matter")
	ErrTransform            = errors.New("markdown transform failed")
	ErrDuplicateSlug        = errors.New("duplicate slug")
)

func notFoundError(slug string) error {
	return goerrors.Wrap(ErrNotFound, goerrors.CategoryNotFound, fmt.Sprintf("post %q not found", slug)).
		WithTextCode(CodeNotFound)
}

func malformedError(file string, err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %s: %w", ErrMalformedFrontMatter, file, err),
		goerrors.CategoryValidation, fmt.Sprintf("malformed front-matter in %s", file)).
		WithTextCode(CodeMalformedFrontMatter)
}

func transformError(slug string, err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrTransform, err),
		goerrors.CategoryInternal, fmt.Sprintf("rendering post %q", slug)).
		WithTextCode(CodeTransformFailed)
}

func duplicateSlugError(slug string, files ...string) error {
	return goerrors.Wrap(fmt.Errorf("%w: %q declared by %v", ErrDuplicateSlug, slug, files),
		goerrors.CategoryConflict, fmt.Sprintf("slug %q is not unique", slug)).
		WithTextCode(CodeDuplicateSlug)
}

// IsNotFound reports whether err means the requested post does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || goerrors.IsCategory(err, goerrors.CategoryNotFound)
}

func IsMalformedFrontMatter(err error) bool {
	return errors.Is(err, ErrMalformedFrontMatter) || goerrors.IsCategory(err, goerrors.CategoryValidation)
}

func IsTransformFailure(err error) bool {
	return errors.Is(err, ErrTransform) || goerrors.IsCategory(err, goerrors.CategoryInternal)
}

func IsDuplicateSlug(err error) bool {
	return errors.Is(err, ErrDuplicateSlug) || goerrors.IsCategory(err, goerrors.CategoryConflict)
}
