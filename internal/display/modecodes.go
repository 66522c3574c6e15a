package display

// ChangeDisplaySettingsEx return codes.
const (
	dispChangeSuccessful  = 0
	dispChangeRestart     = 1
	dispChangeFailed      = -1
	dispChangeBadMode     = -2
	dispChangeNotUpdated  = -3
	dispChangeBadFlags    = -4
	dispChangeBadParam    = -5
	dispChangeBadDualView = -6
)

// modeResult maps a ChangeDisplaySettingsEx return code to the error reported
// for a request of mode.
func modeResult(mode Mode, code int32) error {
	switch code {
	case dispChangeSuccessful:
		return nil
	case dispChangeRestart:
		return ErrRestartRequired
	default:
		return &ModeError{Mode: mode, Code: int(code), Msg: dispChangeMessage(code)}
	}
}

func dispChangeMessage(code int32) string {
	switch code {
	case dispChangeRestart:
		return "the computer must be restarted for the graphics mode to work"
	case dispChangeFailed:
		return "the display driver failed the specified graphics mode"
	case dispChangeBadMode:
		return "the graphics mode is not supported"
	case dispChangeNotUpdated:
		return "unable to write settings to the registry"
	case dispChangeBadFlags:
		return "an invalid set of flags was passed in"
	case dispChangeBadParam:
		return "an invalid parameter was passed in"
	case dispChangeBadDualView:
		return "the settings change was unsuccessful because the system is DualView capable"
	default:
		return "unknown display settings error"
	}
}
