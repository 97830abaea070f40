package style

import "fmt"

// Theme holds the colors used while drawing.
type Theme struct {
	BackgroundColor          Color `mapstructure:"background_color" yaml:"background_color"`
	TextColor                Color `mapstructure:"text_color" yaml:"text_color"`
	DescriptionColor         Color `mapstructure:"description_color" yaml:"description_color"`
	SeparatorColor           Color `mapstructure:"separator_color" yaml:"separator_color"`
	ListItemSeparatorColor   Color `mapstructure:"list_item_separator_color" yaml:"list_item_separator_color"`
	ListItemValueColor       Color `mapstructure:"list_item_value_color" yaml:"list_item_value_color"`
	ListItemFaintValueColor  Color `mapstructure:"list_item_faint_value_color" yaml:"list_item_faint_value_color"`
	HighlightColor           Color `mapstructure:"highlight_color" yaml:"highlight_color"`
	HighlightBackgroundColor Color `mapstructure:"highlight_background_color" yaml:"highlight_background_color"`
	HeaderRectangleColor     Color `mapstructure:"header_rectangle_color" yaml:"header_rectangle_color"`
	TableEvenBackgroundColor Color `mapstructure:"table_even_background_color" yaml:"table_even_background_color"`
	TableBodyTextColor       Color `mapstructure:"table_body_text_color" yaml:"table_body_text_color"`
	ButtonPrimaryColor       Color `mapstructure:"button_primary_color" yaml:"button_primary_color"`
	ButtonPrimaryTextColor   Color `mapstructure:"button_primary_text_color" yaml:"button_primary_text_color"`
	ButtonRegularColor       Color `mapstructure:"button_regular_color" yaml:"button_regular_color"`
	ButtonRegularTextColor   Color `mapstructure:"button_regular_text_color" yaml:"button_regular_text_color"`
	ButtonRegularBorderColor Color `mapstructure:"button_regular_border_color" yaml:"button_regular_border_color"`
	DropdownBackgroundColor  Color `mapstructure:"dropdown_background_color" yaml:"dropdown_background_color"`
}

// Variant selects a built-in theme.
type Variant string

const (
	VariantDark  Variant = "dark"
	VariantLight Variant = "light"
)

// ParseVariant converts a config string into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantDark, "":
		return VariantDark, nil
	case VariantLight:
		return VariantLight, nil
	default:
		return "", fmt.Errorf("unknown theme variant %q (want %q or %q)", s, VariantDark, VariantLight)
	}
}

// ThemeFor returns the built-in theme for v. Unknown variants get the dark theme.
func ThemeFor(v Variant) Theme {
	if v == VariantLight {
		return LightTheme()
	}
	return DarkTheme()
}

// DarkTheme returns the built-in dark theme.
func DarkTheme() Theme {
	return Theme{
		BackgroundColor:          RGB(45, 45, 45),
		TextColor:                RGB(255, 255, 255),
		DescriptionColor:         RGB(163, 163, 163),
		SeparatorColor:           RGB(255, 255, 255),
		ListItemSeparatorColor:   RGB(78, 78, 78),
		ListItemValueColor:       RGB(88, 195, 169),
		ListItemFaintValueColor:  RGB(93, 93, 93),
		HighlightColor:           RGB(49, 218, 225),
		HighlightBackgroundColor: RGB(31, 34, 39),
		HeaderRectangleColor:     RGB(160, 160, 160),
		TableEvenBackgroundColor: RGB(57, 58, 60),
		TableBodyTextColor:       RGB(155, 157, 156),
		ButtonPrimaryColor:       RGB(1, 255, 201),
		ButtonPrimaryTextColor:   RGB(52, 41, 55),
		ButtonRegularColor:       RGB(80, 80, 80),
		ButtonRegularTextColor:   RGB(255, 255, 255),
		ButtonRegularBorderColor: RGB(255, 255, 255),
		DropdownBackgroundColor:  RGBA(0, 0, 0, 178.0/255),
	}
}

// LightTheme returns the built-in light theme.
func LightTheme() Theme {
	return Theme{
		BackgroundColor:          RGB(235, 235, 235),
		TextColor:                RGB(51, 51, 51),
		DescriptionColor:         RGB(140, 140, 140),
		SeparatorColor:           RGB(45, 45, 45),
		ListItemSeparatorColor:   RGB(207, 207, 207),
		ListItemValueColor:       RGB(43, 81, 226),
		ListItemFaintValueColor:  RGB(181, 184, 191),
		HighlightColor:           RGB(13, 182, 213),
		HighlightBackgroundColor: RGB(252, 255, 248),
		HeaderRectangleColor:     RGB(127, 127, 127),
		TableEvenBackgroundColor: RGB(240, 240, 240),
		TableBodyTextColor:       RGB(131, 131, 131),
		ButtonPrimaryColor:       RGB(50, 79, 241),
		ButtonPrimaryTextColor:   RGB(255, 255, 255),
		ButtonRegularColor:       RGB(235, 235, 235),
		ButtonRegularTextColor:   RGB(45, 45, 45),
		ButtonRegularBorderColor: RGB(45, 45, 45),
		DropdownBackgroundColor:  RGBA(0, 0, 0, 178.0/255),
	}
}
