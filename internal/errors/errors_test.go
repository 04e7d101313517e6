package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "battle not found",
			expected: "NOT_FOUND: battle not found",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "unknown dot kind",
			expected: "INVALID_ARGUMENT: unknown dot kind",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("battle not found").
		WithMeta("battle_id", "b_1").
		WithMeta("round", 3)

	s.Equal("b_1", err.Meta["battle_id"])
	s.Equal(3, err.Meta["round"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to save report")

	s.Equal(errors.CodeInternal, wrapped.Code)
	s.Equal("failed to save report", wrapped.Message)
	s.Equal(baseErr, wrapped.Unwrap())
	s.Nil(errors.Wrap(nil, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	original := errors.NotFound("enemy template missing").WithMeta("enemy_id", "lich")
	wrapped := errors.Wrapf(original, "failed to build roster for %s", "crypt")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.Equal("lich", wrapped.Meta["enemy_id"])
	s.True(errors.IsNotFound(wrapped))
	s.True(errors.Is(wrapped, errors.NotFound("")))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	original := errors.Internal("roller failed").WithMeta("size", 100)
	wrapped := errors.WrapWithCode(original, errors.CodeAborted, "battle aborted")

	s.Equal(errors.CodeAborted, wrapped.Code)
	s.Equal(100, wrapped.Meta["size"])
	s.True(errors.IsAborted(wrapped))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(errors.FailedPrecondition("battle over")))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Equal("", errors.GetMessage(nil))
	s.Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
	s.Equal("battle over", errors.GetMessage(errors.Wrap(errors.Aborted("x"), "battle over")))
}

func (s *ErrorsTestSuite) TestFromContext() {
	s.NoError(errors.FromContext(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := errors.FromContext(ctx)
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
	s.ErrorIs(err, context.Canceled)
}

func (s *ErrorsTestSuite) TestRetryable() {
	s.True(errors.CodeUnavailable.Retryable())
	s.True(errors.CodeAborted.Retryable())
	s.False(errors.CodeInvalidArgument.Retryable())
	s.False(errors.CodeNotFound.Retryable())
}
