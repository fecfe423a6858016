package errors

import (
	e "errors"
	"os"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	err := e.New("some error")
	if IsNotFound(err) {
		t.Log("custom error type NotFound is wrongly recognized")
		t.Fail()
	}

	err = asNotFound(err)
	if !IsNotFound(err) {
		t.Log("custom error type NotFound is not recognized")
		t.Fail()
	}

	err = Wrap(err, "loading plan %q", "x.yaml")
	if !IsNotFound(err) {
		t.Errorf("wrapped NotFound is not recognized")
	}
}

func TestIsValidation(t *testing.T) {
	err := NewValidationError("slide %d: negative width", 3)
	if !IsValidation(err) {
		t.Errorf("validation error is not recognized")
	}
	if err.Error() != "slide 3: negative width" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if IsValidation(e.New("plain")) {
		t.Errorf("plain error recognized as validation error")
	}
}

func TestPersistence(t *testing.T) {
	cause := &os.PathError{Op: "open", Path: "/nope/deck.pptx", Err: os.ErrPermission}
	err := NewPersistenceError("/nope/deck.pptx", cause)

	if !IsPersistence(err) {
		t.Errorf("persistence error is not recognized")
	}
	if !e.Is(err, os.ErrPermission) {
		t.Errorf("persistence error does not unwrap to its cause")
	}
	if IsPersistence(cause) {
		t.Errorf("cause wrongly recognized as persistence error")
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Errorf("Wrap(nil) should return nil")
	}
}
