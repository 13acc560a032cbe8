package common

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "capture", err: CaptureError("a.pdf", errors.New("bad header")), sentinel: ErrCapture},
		{name: "quota", err: QuotaExceededError("tenant-1"), sentinel: ErrQuotaExceeded},
		{name: "upload", err: UploadError("a.pdf", errors.New("bucket gone")), sentinel: ErrUpload},
		{name: "registration", err: RegistrationError("a.pdf", errors.New("constraint")), sentinel: ErrRegistration},
		{name: "dispatch", err: JobDispatchError("doc-1", errors.New("locked")), sentinel: ErrJobDispatch},
		{name: "poll timeout", err: PollTimeoutError("doc-1"), sentinel: ErrPollTimeout},
		{name: "poll read", err: PollReadError("doc-1", errors.New("reset")), sentinel: ErrPollRead},
		{name: "automation", err: AutomationTriggerError("batch-1", errors.New("down")), sentinel: ErrAutomationTrigger},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !errors.Is(tt.err, tt.sentinel) {
				t.Fatalf("%v does not unwrap to its sentinel", tt.err)
			}
		})
	}
}

func TestToStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "nil stays nil", err: nil, want: codes.OK},
		{name: "quota maps to resource exhausted", err: QuotaExceededError("tenant-1"), want: codes.ResourceExhausted},
		{name: "poll timeout maps to deadline exceeded", err: PollTimeoutError("doc-1"), want: codes.DeadlineExceeded},
		{name: "capture maps to invalid argument", err: CaptureError("a.pdf", errors.New("bad")), want: codes.InvalidArgument},
		{name: "not found", err: WrapError(ErrNotFound, "load document"), want: codes.NotFound},
		{name: "anything else is internal", err: errors.New("boom"), want: codes.Internal},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ToStatus(tt.err)
			if tt.want == codes.OK {
				if got != nil {
					t.Fatalf("ToStatus(nil) = %v, want nil", got)
				}
				return
			}
			st, ok := status.FromError(got)
			if !ok {
				t.Fatalf("ToStatus returned a non-status error: %v", got)
			}
			if st.Code() != tt.want {
				t.Fatalf("code = %v, want %v", st.Code(), tt.want)
			}
		})
	}
}
