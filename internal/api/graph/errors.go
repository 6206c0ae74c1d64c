package graph

import (
	"Recipe-Hub/domain"
	"errors"
)

// resolverError is what resolvers hand back to the engine; the code ends up
// under "extensions" in the response.
type resolverError struct {
	err  error
	code string
}

func (e *resolverError) Error() string {
	if e.code == domain.CodeInternal {
		return domain.MessageFailedProcessRequest
	}
	return e.err.Error()
}

func (e *resolverError) Unwrap() error {
	return e.err
}

func (e *resolverError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var re *resolverError
	if errors.As(err, &re) {
		return err
	}
	return &resolverError{err: err, code: domain.ErrorCode(err)}
}

// ErrorCode extracts the code of a resolver error, or "" for engine errors
// such as syntax and validation failures.
func ErrorCode(err error) string {
	var re *resolverError
	if errors.As(err, &re) {
		return re.code
	}
	return ""
}
