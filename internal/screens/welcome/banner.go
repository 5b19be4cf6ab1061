package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/clinsaude/clin/internal/ui/theme"
)

const bannerArt = `
  ██████╗██╗     ██╗███╗   ██╗
 ██╔════╝██║     ██║████╗  ██║
 ██║     ██║     ██║██╔██╗ ██║
 ██║     ██║     ██║██║╚██╗██║
 ╚██████╗███████╗██║██║ ╚████║
  ╚═════╝╚══════╝╚═╝╚═╝  ╚═══╝`

const bannerCompact = "C L I N"

// RenderBanner returns the CLIN banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 34 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 34 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
