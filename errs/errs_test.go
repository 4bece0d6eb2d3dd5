// SPDX-License-Identifier: EPL-2.0

package errs

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := []error{ErrValidation, ErrState, ErrNotSupported, ErrMathDomain, ErrDestroyed, ErrIndexSize}

	for i, a := range all {
		if a == nil {
			t.Fatalf("error %d is nil", i)
		}

		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: cone outer gain %v outside [0, 1]", ErrState, 1.5)

	if !errors.Is(err, ErrState) {
		t.Error("errors.Is() failed for wrapped ErrState")
	}

	if errors.Is(err, ErrValidation) {
		t.Error("errors.Is() matched ErrValidation for wrapped ErrState")
	}

	want := "invalid state: cone outer gain 1.5 outside [0, 1]"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
