// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

// Color variables are replaced wholesale by ApplyTheme; the initial values
// are the default preset.
var (
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#CCCCCC"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"}

	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#696969"}
	BorderFocusColor   = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	ButtonTextColor             = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor        = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonPrimaryFocusBgColor   = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonSecondaryBgColor      = lipgloss.AdaptiveColor{Light: "#2D3436", Dark: "#2D3436"}
	ButtonSecondaryFocusBgColor = lipgloss.AdaptiveColor{Light: "#636E72", Dark: "#636E72"}
	ButtonDisabledBgColor       = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#2D2D2D"}

	FormTextInputBorderColor        = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#8C8C8C"}
	FormTextInputFocusedBorderColor = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	FormTextInputLabelColor         = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#8C8C8C"}
	FormTextInputFocusedLabelColor  = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}

	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#8C8C8C"}
)

// Styles derived from the colors above. Rebuilt by ApplyTheme because a
// lipgloss.Style captures its colors at creation time.
var (
	TitleStyle        lipgloss.Style
	SuccessTitleStyle lipgloss.Style
	HintStyle         lipgloss.Style
	ErrorTextStyle    lipgloss.Style
	PlaceholderStyle  lipgloss.Style
	ValueStyle        lipgloss.Style
	SummaryLabelStyle lipgloss.Style

	SelectionIndicatorStyle lipgloss.Style

	PrimaryButtonStyle          lipgloss.Style
	PrimaryButtonFocusedStyle   lipgloss.Style
	SecondaryButtonStyle        lipgloss.Style
	SecondaryButtonFocusedStyle lipgloss.Style
	DisabledButtonStyle         lipgloss.Style

	OverlayStyle lipgloss.Style
)

func init() {
	rebuildStyles()
}

// styleRebuilders lets dependent packages refresh their own cached styles
// after a theme change without styles importing them.
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback run after every ApplyTheme.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	SuccessTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(StatusSuccessColor)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorTextStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor)
	ValueStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	SummaryLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(TextSecondaryColor)

	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	base := lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(ButtonTextColor)
	focused := func(s lipgloss.Style) lipgloss.Style { return s.Underline(true).UnderlineSpaces(true) }

	PrimaryButtonStyle = base.Background(ButtonPrimaryBgColor)
	PrimaryButtonFocusedStyle = focused(base.Background(ButtonPrimaryFocusBgColor))
	SecondaryButtonStyle = base.Background(ButtonSecondaryBgColor)
	SecondaryButtonFocusedStyle = focused(base.Background(ButtonSecondaryFocusBgColor))
	DisabledButtonStyle = base.Bold(false).Foreground(TextMutedColor).Background(ButtonDisabledBgColor)

	OverlayStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(OverlayBorderColor).
		Padding(0, 1)

	for _, fn := range styleRebuilders {
		fn()
	}
}
