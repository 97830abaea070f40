package style

import "time"

// Style holds the numeric layout constants, grouped per component.
type Style struct {
	List          ListStyle          `mapstructure:"list" yaml:"list"`
	Label         LabelStyle         `mapstructure:"label" yaml:"label"`
	Header        HeaderStyle        `mapstructure:"header" yaml:"header"`
	Table         TableStyle         `mapstructure:"table" yaml:"table"`
	Button        ButtonStyle        `mapstructure:"button" yaml:"button"`
	Highlight     HighlightStyle     `mapstructure:"highlight" yaml:"highlight"`
	SettingsFrame SettingsFrameStyle `mapstructure:"settings_frame" yaml:"settings_frame"`
	CrashFrame    CrashFrameStyle    `mapstructure:"crash_frame" yaml:"crash_frame"`
	Dropdown      DropdownStyle      `mapstructure:"dropdown" yaml:"dropdown"`
	Animations    AnimationStyle     `mapstructure:"animations" yaml:"animations"`
}

// ListStyle configures List margins and row spacing.
type ListStyle struct {
	MarginLeftRight    int           `mapstructure:"margin_left_right" yaml:"margin_left_right"`
	MarginTopBottom    int           `mapstructure:"margin_top_bottom" yaml:"margin_top_bottom"`
	Spacing            int           `mapstructure:"spacing" yaml:"spacing"`
	GroupSpacingHeight int           `mapstructure:"group_spacing_height" yaml:"group_spacing_height"`
	Item               ListItemStyle `mapstructure:"item" yaml:"item"`
}

// ListItemStyle configures a single row.
type ListItemStyle struct {
	Height             int `mapstructure:"height" yaml:"height"`
	HeightWithSubLabel int `mapstructure:"height_with_sub_label" yaml:"height_with_sub_label"`
	ValueSize          int `mapstructure:"value_size" yaml:"value_size"`
	TextSize           int `mapstructure:"text_size" yaml:"text_size"`
	Padding            int `mapstructure:"padding" yaml:"padding"`
	ThumbnailPadding   int `mapstructure:"thumbnail_padding" yaml:"thumbnail_padding"`
	DescriptionIndent  int `mapstructure:"description_indent" yaml:"description_indent"`
	DescriptionSpacing int `mapstructure:"description_spacing" yaml:"description_spacing"`
	Indent             int `mapstructure:"indent" yaml:"indent"`
	SelectRadius       int `mapstructure:"select_radius" yaml:"select_radius"`
}

// LabelStyle configures font sizes per label style.
type LabelStyle struct {
	RegularFontSize     int     `mapstructure:"regular_font_size" yaml:"regular_font_size"`
	MediumFontSize      int     `mapstructure:"medium_font_size" yaml:"medium_font_size"`
	SmallFontSize       int     `mapstructure:"small_font_size" yaml:"small_font_size"`
	DescriptionFontSize int     `mapstructure:"description_font_size" yaml:"description_font_size"`
	CrashFontSize       int     `mapstructure:"crash_font_size" yaml:"crash_font_size"`
	ButtonFontSize      int     `mapstructure:"button_font_size" yaml:"button_font_size"`
	LineHeight          float64 `mapstructure:"line_height" yaml:"line_height"`
}

// HeaderStyle configures section headers.
type HeaderStyle struct {
	Height         int `mapstructure:"height" yaml:"height"`
	Padding        int `mapstructure:"padding" yaml:"padding"`
	RectangleWidth int `mapstructure:"rectangle_width" yaml:"rectangle_width"`
	FontSize       int `mapstructure:"font_size" yaml:"font_size"`
}

// TableStyle configures tabular views.
type TableStyle struct {
	RowHeight int `mapstructure:"row_height" yaml:"row_height"`
	Padding   int `mapstructure:"padding" yaml:"padding"`
	FontSize  int `mapstructure:"font_size" yaml:"font_size"`
}

// ButtonStyle configures buttons.
type ButtonStyle struct {
	Height       int `mapstructure:"height" yaml:"height"`
	CornerRadius int `mapstructure:"corner_radius" yaml:"corner_radius"`
	BorderWidth  int `mapstructure:"border_width" yaml:"border_width"`
}

// HighlightStyle configures the focus highlight.
type HighlightStyle struct {
	StrokeWidth int `mapstructure:"stroke_width" yaml:"stroke_width"`
	Padding     int `mapstructure:"padding" yaml:"padding"`
}

// SettingsFrameStyle configures the settings panel frame.
type SettingsFrameStyle struct {
	HeaderHeight      int `mapstructure:"header_height" yaml:"header_height"`
	FooterHeight      int `mapstructure:"footer_height" yaml:"footer_height"`
	SeparatorSpacing  int `mapstructure:"separator_spacing" yaml:"separator_spacing"`
	TitleSize         int `mapstructure:"title_size" yaml:"title_size"`
	TitleStart        int `mapstructure:"title_start" yaml:"title_start"`
	TitleOffset       int `mapstructure:"title_offset" yaml:"title_offset"`
	FooterTextSize    int `mapstructure:"footer_text_size" yaml:"footer_text_size"`
	FooterTextSpacing int `mapstructure:"footer_text_spacing" yaml:"footer_text_spacing"`
}

// CrashFrameStyle configures the crash screen.
type CrashFrameStyle struct {
	LabelWidth     float64 `mapstructure:"label_width" yaml:"label_width"`
	BoxStrokeWidth int     `mapstructure:"box_stroke_width" yaml:"box_stroke_width"`
	BoxSize        int     `mapstructure:"box_size" yaml:"box_size"`
	BoxSpacing     int     `mapstructure:"box_spacing" yaml:"box_spacing"`
	ButtonWidth    int     `mapstructure:"button_width" yaml:"button_width"`
	ButtonHeight   int     `mapstructure:"button_height" yaml:"button_height"`
}

// DropdownStyle configures the single-choice picker.
type DropdownStyle struct {
	ListWidth     int `mapstructure:"list_width" yaml:"list_width"`
	ListPadding   int `mapstructure:"list_padding" yaml:"list_padding"`
	HeaderHeight  int `mapstructure:"header_height" yaml:"header_height"`
	HeaderPadding int `mapstructure:"header_padding" yaml:"header_padding"`
	TitleSize     int `mapstructure:"title_size" yaml:"title_size"`
}

// AnimationStyle configures transition durations.
type AnimationStyle struct {
	ValueTransition time.Duration `mapstructure:"value_transition" yaml:"value_transition"`
	Show            time.Duration `mapstructure:"show" yaml:"show"`
	Collapse        time.Duration `mapstructure:"collapse" yaml:"collapse"`
}

// Default returns the built-in style tuned for a 1280x720 surface.
func Default() Style {
	return Style{
		List: ListStyle{
			MarginLeftRight:    60,
			MarginTopBottom:    42,
			Spacing:            55,
			GroupSpacingHeight: 30,
			Item: ListItemStyle{
				Height:             69,
				HeightWithSubLabel: 99,
				ValueSize:          20,
				TextSize:           22,
				Padding:            15,
				ThumbnailPadding:   11,
				DescriptionIndent:  16,
				DescriptionSpacing: 16,
				Indent:             40,
				SelectRadius:       15,
			},
		},
		Label: LabelStyle{
			RegularFontSize:     20,
			MediumFontSize:      18,
			SmallFontSize:       16,
			DescriptionFontSize: 16,
			CrashFontSize:       24,
			ButtonFontSize:      24,
			LineHeight:          1.65,
		},
		Header: HeaderStyle{
			Height:         44,
			Padding:        11,
			RectangleWidth: 5,
			FontSize:       18,
		},
		Table: TableStyle{
			RowHeight: 38,
			Padding:   15,
			FontSize:  16,
		},
		Button: ButtonStyle{
			Height:       60,
			CornerRadius: 5,
			BorderWidth:  2,
		},
		Highlight: HighlightStyle{
			StrokeWidth: 5,
			Padding:     2,
		},
		SettingsFrame: SettingsFrameStyle{
			HeaderHeight:      88,
			FooterHeight:      73,
			SeparatorSpacing:  30,
			TitleSize:         28,
			TitleStart:        130,
			TitleOffset:       5,
			FooterTextSize:    22,
			FooterTextSpacing: 30,
		},
		CrashFrame: CrashFrameStyle{
			LabelWidth:     0.60,
			BoxStrokeWidth: 5,
			BoxSize:        64,
			BoxSpacing:     102,
			ButtonWidth:    356,
			ButtonHeight:   60,
		},
		Dropdown: DropdownStyle{
			ListWidth:     720,
			ListPadding:   40,
			HeaderHeight:  71,
			HeaderPadding: 70,
			TitleSize:     24,
		},
		Animations: AnimationStyle{
			ValueTransition: 100 * time.Millisecond,
			Show:            250 * time.Millisecond,
			Collapse:        100 * time.Millisecond,
		},
	}
}
