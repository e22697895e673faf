package getoptio

import "github.com/fatih/color"

// Role names a semantic colour slot
type Role int

const (
	RoleHeader Role = iota
	RoleShort
	RoleLong
	RoleHelp
	RoleDebug
	RoleInfo
	RoleSuccess
	RoleWarning
	RoleError
)

// Theme maps semantic roles to colour attributes
type Theme struct {
	Primary, Success, Warning, Error, Info, Debug, Muted []color.Attribute
}

// DefaultTheme returns the bright 16-colour theme
func DefaultTheme() Theme {
	return Theme{
		Primary: []color.Attribute{color.FgHiBlue, color.Bold},
		Success: []color.Attribute{color.FgHiGreen},
		Warning: []color.Attribute{color.FgHiYellow},
		Error:   []color.Attribute{color.FgHiRed},
		Info:    []color.Attribute{color.FgHiCyan},
		Debug:   []color.Attribute{color.FgHiMagenta},
		Muted:   []color.Attribute{color.FgHiBlack},
	}
}

// color builds a fresh *color.Color so enabling or disabling it never
// leaks into another manager
func (t Theme) color(role Role) *color.Color {
	var attrs []color.Attribute
	switch role {
	case RoleHeader:
		attrs = t.Primary
	case RoleShort, RoleInfo:
		attrs = t.Info
	case RoleLong, RoleSuccess:
		attrs = t.Success
	case RoleHelp:
		attrs = t.Muted
	case RoleDebug:
		attrs = t.Debug
	case RoleWarning:
		attrs = t.Warning
	case RoleError:
		attrs = t.Error
	}
	if len(attrs) == 0 {
		return nil
	}
	return color.New(attrs...)
}
