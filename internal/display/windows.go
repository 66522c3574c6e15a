//go:build windows

package display

import (
	"context"
	"errors"
	"fmt"
	"unsafe"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/windows"
)

const (
	enumCurrentSettings = 0xFFFFFFFF

	dmPelsWidth        = 0x00080000
	dmPelsHeight       = 0x00100000
	dmDisplayFrequency = 0x00400000

	cdsUpdateRegistry = 0x00000001
	cdsTest           = 0x00000002
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplaySettingsW     = user32.NewProc("EnumDisplaySettingsW")
	procChangeDisplaySettingsExW = user32.NewProc("ChangeDisplaySettingsExW")
)

// devMode mirrors DEVMODEW with the display variant of its first union.
type devMode struct {
	DeviceName         [32]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

type windowsController struct {
	logger *log.Logger
}

func newWindowsController(opts Options) (Controller, error) {
	if err := procEnumDisplaySettingsW.Find(); err != nil {
		return nil, fmt.Errorf("loading user32: %w", err)
	}
	return &windowsController{logger: opts.Logger}, nil
}

// Replaced in tests.
var (
	enumDisplaySettings   = enumCurrentDisplaySettings
	changeDisplaySettings = changeDisplaySettingsEx
)

func (c *windowsController) current() (*devMode, error) {
	dm := &devMode{}
	dm.Size = uint16(unsafe.Sizeof(*dm))
	if !enumDisplaySettings(dm) {
		return nil, errors.New("EnumDisplaySettingsW failed for the primary display")
	}
	return dm, nil
}

func (c *windowsController) QueryCurrentMode(ctx context.Context) (Mode, error) {
	dm, err := c.current()
	if err != nil {
		return Mode{}, err
	}
	return Mode{
		Width:        int(dm.PelsWidth),
		Height:       int(dm.PelsHeight),
		RefreshRate:  int(dm.DisplayFrequency),
		BitsPerPixel: int(dm.BitsPerPel),
		PositionX:    int(dm.PositionX),
		PositionY:    int(dm.PositionY),
		Orientation:  int(dm.DisplayOrientation),
		Output:       windows.UTF16ToString(dm.DeviceName[:]),
	}, nil
}

func (c *windowsController) RequestMode(ctx context.Context, mode Mode, persistent bool) error {
	dm, err := c.current()
	if err != nil {
		return err
	}
	dm.PelsWidth = uint32(mode.Width)
	dm.PelsHeight = uint32(mode.Height)
	dm.DisplayFrequency = uint32(mode.RefreshRate)
	dm.Fields = dmPelsWidth | dmPelsHeight | dmDisplayFrequency

	// A valid mode that needs a reboot tests as DISP_CHANGE_RESTART.
	if code := changeDisplaySettings(dm, cdsTest); code != dispChangeSuccessful && code != dispChangeRestart {
		c.logger.Debug("display mode test failed", "mode", mode.String(), "code", code)
		return modeResult(mode, code)
	}

	var flags uint32
	if persistent {
		flags = cdsUpdateRegistry
	}
	return modeResult(mode, changeDisplaySettings(dm, flags))
}

func enumCurrentDisplaySettings(dm *devMode) bool {
	r1, _, _ := procEnumDisplaySettingsW.Call(0, enumCurrentSettings, uintptr(unsafe.Pointer(dm)))
	return r1 != 0
}

func changeDisplaySettingsEx(dm *devMode, flags uint32) int32 {
	r1, _, _ := procChangeDisplaySettingsExW.Call(0, uintptr(unsafe.Pointer(dm)), 0, uintptr(flags), 0)
	return int32(r1)
}
