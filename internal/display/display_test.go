package display

import (
	"context"
	"errors"
	"testing"

	"github.com/go-test/deep"
	"go.uber.org/mock/gomock"

	"github.com/iiroan/resswitch/internal/preset"
)

func TestApplierPreservesOtherFields(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mock := NewMockController(ctrl)

	current := Mode{
		Width:        2560,
		Height:       1440,
		RefreshRate:  60,
		BitsPerPixel: 32,
		PositionX:    1920,
		PositionY:    0,
		Orientation:  1,
		Output:       `\\.\DISPLAY1`,
	}
	want := current
	want.Width, want.Height, want.RefreshRate = 1920, 1080, 144

	gomock.InOrder(
		mock.EXPECT().QueryCurrentMode(gomock.Any()).Return(current, nil),
		mock.EXPECT().RequestMode(gomock.Any(), want, true).Return(nil),
	)

	applier := NewApplier(mock, true, nil)
	got, err := applier.Apply(ctx, preset.Preset{Width: 1920, Height: 1080, RefreshRate: 144})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Fatalf("applied mode mismatch: %v", diff)
	}
}

func TestApplierSessionOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockController(ctrl)
	mock.EXPECT().QueryCurrentMode(gomock.Any()).Return(Mode{Width: 800, Height: 600, RefreshRate: 60}, nil)
	mock.EXPECT().RequestMode(gomock.Any(), gomock.Any(), false).Return(nil)

	if _, err := NewApplier(mock, false, nil).Apply(context.Background(), preset.Preset{Width: 1024, Height: 768, RefreshRate: 60}); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
}

func TestApplierRejectedMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockController(ctrl)

	current := Mode{Width: 1920, Height: 1080, RefreshRate: 60, BitsPerPixel: 32}
	target := current.WithResolution(1920, 1080, 144)
	rejected := &ModeError{Mode: target, Code: -2, Msg: "the graphics mode is not supported"}

	mock.EXPECT().QueryCurrentMode(gomock.Any()).Return(current, nil)
	mock.EXPECT().RequestMode(gomock.Any(), target, true).Return(rejected)

	got, err := NewApplier(mock, true, nil).Apply(context.Background(), preset.Preset{Width: 1920, Height: 1080, RefreshRate: 144})
	var modeErr *ModeError
	if !errors.As(err, &modeErr) {
		t.Fatalf("Apply error = %v, want *ModeError", err)
	}
	if modeErr.Code != -2 {
		t.Fatalf("ModeError code = %d", modeErr.Code)
	}
	if got != current {
		t.Fatalf("rejected apply should report the unchanged mode, got %+v", got)
	}
}

func TestApplierQueryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockController(ctrl)
	mock.EXPECT().QueryCurrentMode(gomock.Any()).Return(Mode{}, errors.New("no display"))

	_, err := NewApplier(mock, true, nil).Apply(context.Background(), preset.Preset{Width: 1920, Height: 1080, RefreshRate: 60})
	if err == nil {
		t.Fatalf("expected query failure")
	}
}

func TestApplierRestartRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockController(ctrl)
	mock.EXPECT().QueryCurrentMode(gomock.Any()).Return(Mode{Width: 1920, Height: 1080, RefreshRate: 60}, nil)
	mock.EXPECT().RequestMode(gomock.Any(), gomock.Any(), true).Return(ErrRestartRequired)

	got, err := NewApplier(mock, true, nil).Apply(context.Background(), preset.Preset{Width: 1280, Height: 720, RefreshRate: 60})
	if !errors.Is(err, ErrRestartRequired) {
		t.Fatalf("Apply error = %v, want ErrRestartRequired", err)
	}
	if got.Width != 1280 {
		t.Fatalf("restart-required apply should report the requested mode, got %+v", got)
	}
}

func TestModeErrorMessage(t *testing.T) {
	err := &ModeError{Mode: Mode{Width: 1920, Height: 1080, RefreshRate: 144}, Code: -2, Msg: "the graphics mode is not supported"}
	want := "changing display mode to 1920x1080 144Hz: the graphics mode is not supported (code -2)"
	if err.Error() != want {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, err := Open(Options{Backend: "wayland"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
