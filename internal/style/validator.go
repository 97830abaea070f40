package style

import (
	"fmt"
	"strings"
	"time"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // The key path (e.g., "list.item.height")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

type checker struct {
	errs []ValidationError
}

func (c *checker) positive(field string, v int) {
	if v <= 0 {
		c.errs = append(c.errs, ValidationError{Field: field, Value: v, Message: "must be positive"})
	}
}

func (c *checker) nonNegative(field string, v int) {
	if v < 0 {
		c.errs = append(c.errs, ValidationError{Field: field, Value: v, Message: "must not be negative"})
	}
}

func (c *checker) duration(field string, d time.Duration) {
	if d < 0 {
		c.errs = append(c.errs, ValidationError{Field: field, Value: d, Message: "must not be negative"})
	}
}

// Validate checks the Style for invalid values and returns all validation errors found.
func (s Style) Validate() []ValidationError {
	var c checker

	c.nonNegative("list.margin_left_right", s.List.MarginLeftRight)
	c.nonNegative("list.margin_top_bottom", s.List.MarginTopBottom)
	c.nonNegative("list.spacing", s.List.Spacing)
	c.nonNegative("list.group_spacing_height", s.List.GroupSpacingHeight)
	c.positive("list.item.height", s.List.Item.Height)
	c.positive("list.item.value_size", s.List.Item.ValueSize)
	c.positive("list.item.text_size", s.List.Item.TextSize)
	c.nonNegative("list.item.padding", s.List.Item.Padding)
	c.nonNegative("list.item.thumbnail_padding", s.List.Item.ThumbnailPadding)
	c.nonNegative("list.item.indent", s.List.Item.Indent)
	if s.List.Item.HeightWithSubLabel < s.List.Item.Height {
		c.errs = append(c.errs, ValidationError{
			Field:   "list.item.height_with_sub_label",
			Value:   s.List.Item.HeightWithSubLabel,
			Message: fmt.Sprintf("must be at least list.item.height (%d)", s.List.Item.Height),
		})
	}
	if 2*s.List.Item.ThumbnailPadding >= s.List.Item.Height {
		c.errs = append(c.errs, ValidationError{
			Field:   "list.item.thumbnail_padding",
			Value:   s.List.Item.ThumbnailPadding,
			Message: "leaves no room for the thumbnail",
		})
	}

	c.positive("label.regular_font_size", s.Label.RegularFontSize)
	c.positive("label.description_font_size", s.Label.DescriptionFontSize)
	c.positive("label.crash_font_size", s.Label.CrashFontSize)
	if s.Label.LineHeight <= 0 {
		c.errs = append(c.errs, ValidationError{Field: "label.line_height", Value: s.Label.LineHeight, Message: "must be positive"})
	}

	c.positive("header.height", s.Header.Height)
	c.nonNegative("header.padding", s.Header.Padding)
	c.positive("table.row_height", s.Table.RowHeight)

	c.positive("settings_frame.header_height", s.SettingsFrame.HeaderHeight)
	c.positive("settings_frame.footer_height", s.SettingsFrame.FooterHeight)
	c.nonNegative("settings_frame.separator_spacing", s.SettingsFrame.SeparatorSpacing)

	if s.CrashFrame.LabelWidth <= 0 || s.CrashFrame.LabelWidth > 1 {
		c.errs = append(c.errs, ValidationError{Field: "crash_frame.label_width", Value: s.CrashFrame.LabelWidth, Message: "must be in (0, 1]"})
	}
	c.positive("crash_frame.button_width", s.CrashFrame.ButtonWidth)
	c.positive("crash_frame.button_height", s.CrashFrame.ButtonHeight)

	c.positive("dropdown.list_width", s.Dropdown.ListWidth)

	c.duration("animations.value_transition", s.Animations.ValueTransition)
	c.duration("animations.show", s.Animations.Show)
	c.duration("animations.collapse", s.Animations.Collapse)

	return c.errs
}
