package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown error"},
		{KindInvalid, "invalid"},
		{KindNetwork, "network error"},
		{KindServer, "server error"},
		{KindResponse, "malformed response"},
		{KindClipboard, "clipboard error"},
		{KindIO, "I/O error"},
		{KindConfig, "configuration error"},
		{KindTimeout, "timeout"},
		{Kind(999), "unknown error"}, // Unknown kind
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with op and context",
			err:      &Error{Op: "test.Op", Context: "some context", Err: errors.New("underlying error")},
			expected: "test.Op: some context: underlying error",
		},
		{
			name:     "with op only",
			err:      &Error{Op: "test.Op", Err: errors.New("underlying error")},
			expected: "test.Op: underlying error",
		},
		{
			name:     "without op",
			err:      &Error{Err: errors.New("underlying error")},
			expected: "underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{Op: "test.Op", Err: underlying}

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", got, underlying)
	}
}

func TestE(t *testing.T) {
	tests := []struct {
		name       string
		args       []interface{}
		wantOp     Op
		wantKind   Kind
		wantHasErr bool
	}{
		{
			name:       "with all args",
			args:       []interface{}{Op("test.Op"), KindServer, "context", errors.New("error")},
			wantOp:     "test.Op",
			wantKind:   KindServer,
			wantHasErr: true,
		},
		{
			name:       "with op and kind",
			args:       []interface{}{Op("test.Op"), KindInvalid, "just a message"},
			wantOp:     "test.Op",
			wantKind:   KindInvalid,
			wantHasErr: true, // Context becomes the error when no error is provided
		},
		{
			name:       "with just error",
			args:       []interface{}{errors.New("simple error")},
			wantOp:     "",
			wantKind:   KindUnknown,
			wantHasErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := E(tt.args...)
			e, ok := err.(*Error)
			if !ok {
				t.Fatalf("E() returned %T, want *Error", err)
			}

			if e.Op != tt.wantOp {
				t.Errorf("E().Op = %q, want %q", e.Op, tt.wantOp)
			}
			if e.Kind != tt.wantKind {
				t.Errorf("E().Kind = %v, want %v", e.Kind, tt.wantKind)
			}
			if (e.Err != nil) != tt.wantHasErr {
				t.Errorf("E().Err nil = %v, want nil = %v", e.Err == nil, !tt.wantHasErr)
			}
		})
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     Kind
		expected bool
	}{
		{
			name:     "matching kind",
			err:      E(Op("test"), KindServer, "not found"),
			kind:     KindServer,
			expected: true,
		},
		{
			name:     "non-matching kind",
			err:      E(Op("test"), KindServer, "not found"),
			kind:     KindInvalid,
			expected: false,
		},
		{
			name:     "foreign error",
			err:      errors.New("regular error"),
			kind:     KindServer,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			kind:     KindServer,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      fmt.Errorf("wrapped: %w", E(Op("test"), KindTimeout, "timeout")),
			kind:     KindTimeout,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetKind(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{
			name:     "structured error",
			err:      E(Op("test"), KindServer, "not found"),
			expected: KindServer,
		},
		{
			name:     "regular error",
			err:      errors.New("regular error"),
			expected: KindUnknown,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetKind(tt.err); got != tt.expected {
				t.Errorf("GetKind() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMissingInformation(t *testing.T) {
	err := MissingInformation()

	if !Is(err, KindInvalid) {
		t.Error("MissingInformation should return KindInvalid error")
	}

	if e, ok := err.(*Error); ok {
		if e.Op != "reply.Validate" {
			t.Errorf("Op = %q, want %q", e.Op, "reply.Validate")
		}
	} else {
		t.Error("MissingInformation should return *Error")
	}
}

func TestUnknownTone(t *testing.T) {
	err := UnknownTone("sarcastic")

	if !Is(err, KindInvalid) {
		t.Error("UnknownTone should return KindInvalid error")
	}
	if got := err.Error(); got != `tone.Parse: unknown tone "sarcastic"` {
		t.Errorf("Error() = %q", got)
	}
}

func TestTransportFailed(t *testing.T) {
	underlying := errors.New("connection refused")
	err := TransportFailed("http://localhost:8080/api/email/generate", underlying)

	if !Is(err, KindNetwork) {
		t.Error("TransportFailed should return KindNetwork error")
	}

	if !errors.Is(err, underlying) {
		t.Error("TransportFailed should wrap the underlying error")
	}
}

func TestRequestTimedOut(t *testing.T) {
	err := RequestTimedOut("http://localhost:8080", errors.New("deadline exceeded"))

	if !Is(err, KindTimeout) {
		t.Error("RequestTimedOut should return KindTimeout error")
	}
}

func TestUnexpectedStatus(t *testing.T) {
	err := UnexpectedStatus(503)

	if !Is(err, KindServer) {
		t.Error("UnexpectedStatus should return KindServer error")
	}
	if got := err.Error(); got != "reply.Generate: HTTP error! status: 503" {
		t.Errorf("Error() = %q", got)
	}
}

func TestMalformedResponse(t *testing.T) {
	err := MalformedResponse("empty reply body")

	if !Is(err, KindResponse) {
		t.Error("MalformedResponse should return KindResponse error")
	}
}

func TestClipboardUnavailable(t *testing.T) {
	underlying := errors.New("no display")
	err := ClipboardUnavailable(underlying)

	if !Is(err, KindClipboard) {
		t.Error("ClipboardUnavailable should return KindClipboard error")
	}
	if !errors.Is(err, underlying) {
		t.Error("ClipboardUnavailable should wrap the underlying error")
	}
}

func TestExportFailed(t *testing.T) {
	err := ExportFailed("/tmp/email-reply.txt", errors.New("read-only file system"))

	if !Is(err, KindIO) {
		t.Error("ExportFailed should return KindIO error")
	}
}

func TestConfigLoadFailed(t *testing.T) {
	underlying := errors.New("file not found")
	err := ConfigLoadFailed("/path/to/config", underlying)

	if !Is(err, KindConfig) {
		t.Error("ConfigLoadFailed should return KindConfig error")
	}
}

func TestConfigSaveFailed(t *testing.T) {
	underlying := errors.New("permission denied")
	err := ConfigSaveFailed("/path/to/config", underlying)

	if !Is(err, KindConfig) {
		t.Error("ConfigSaveFailed should return KindConfig error")
	}
}

func TestConfigInvalid(t *testing.T) {
	err := ConfigInvalid("api_base_url must use http or https")

	if !Is(err, KindInvalid) {
		t.Error("ConfigInvalid should return KindInvalid error")
	}
}

func TestErrorChaining(t *testing.T) {
	// Test that errors can be properly chained and unwrapped
	innerErr := errors.New("original error")
	middleErr := E(Op("middle.Op"), KindIO, innerErr)
	outerErr := E(Op("outer.Op"), KindConfig, middleErr)

	// Should be able to unwrap to find inner error
	if !errors.Is(outerErr, innerErr) {
		t.Error("Should be able to find inner error through chain")
	}

	// Kind should be from the outer error
	if GetKind(outerErr) != KindConfig {
		t.Error("GetKind should return outer error's kind")
	}
}
