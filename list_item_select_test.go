package borealis

import (
	"testing"
)

func TestNewSelectListItem_InvalidSelectionPanics(t *testing.T) {
	type tc struct {
		values   []string
		selected int
	}

	tests := map[string]tc{
		"negative index": {values: []string{"a", "b"}, selected: -1},
		"past the end":   {values: []string{"a", "b"}, selected: 2},
		"no values":      {values: nil, selected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewSelectListItem should panic")
				}
			}()
			NewSelectListItem("Language", tt.values, tt.selected)
		})
	}
}

func TestSelectListItem_Picker(t *testing.T) {
	type tc struct {
		result       int
		wantSelected int
		wantValue    string
		wantListener []int
	}

	tests := map[string]tc{
		"cancel leaves the row unchanged": {
			result:       -1,
			wantSelected: 1,
			wantValue:    "Français",
		},
		"out of range result is ignored": {
			result:       3,
			wantSelected: 1,
			wantValue:    "Français",
		},
		"valid result updates the row": {
			result:       2,
			wantSelected: 2,
			wantValue:    "Deutsch",
			wantListener: []int{2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			picker := &fakePicker{}
			app, sched, _ := newTestApp(t, WithPicker(picker))
			item := NewSelectListItem("Language", []string{"English", "Français", "Deutsch"}, 1)
			attach(item, app)

			var got []int
			item.SetListener(func(i int) { got = append(got, i) })

			item.OnClick()
			if len(picker.calls) != 1 {
				t.Fatalf("picker opened %d times, want 1", len(picker.calls))
			}
			call := picker.calls[0]
			if call.title != "Language" || call.selected != 1 || len(call.values) != 3 {
				t.Errorf("picker call = %+v", call)
			}

			call.cb(tt.result)

			if item.SelectedValue() != tt.wantSelected {
				t.Errorf("SelectedValue() = %d, want %d", item.SelectedValue(), tt.wantSelected)
			}
			if item.Value() != tt.wantValue {
				t.Errorf("Value() = %q, want %q", item.Value(), tt.wantValue)
			}
			if len(got) != len(tt.wantListener) || (len(got) == 1 && got[0] != tt.wantListener[0]) {
				t.Errorf("listener calls = %v, want %v", got, tt.wantListener)
			}
			if len(sched.handles) != 0 {
				t.Error("a picked value is applied without a transition")
			}
		})
	}
}

func TestSelectListItem_ValuesAreCopied(t *testing.T) {
	values := []string{"a", "b"}
	item := NewSelectListItem("Letter", values, 0)
	values[0] = "z"
	if item.Value() != "a" || item.Values()[0] != "a" {
		t.Error("the row should keep its own copy of the values")
	}
}

func TestSelectListItem_DropdownPicker(t *testing.T) {
	type tc struct {
		action       func(app *App)
		wantSelected int
	}

	tests := map[string]tc{
		"confirming another row picks it": {
			action: func(app *App) {
				app.Navigate(FocusDown)
				app.Confirm()
			},
			wantSelected: 2,
		},
		"back cancels": {
			action: func(app *App) {
				app.Back()
			},
			wantSelected: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			item := NewSelectListItem("Language", []string{"English", "Français", "Deutsch"}, 1)
			list := NewList(0)
			list.AddView(item)
			frame := NewSettingsFrame(false, false)
			frame.SetContentView(list)
			app.PushView(frame)

			if app.Focused() != View(item) {
				t.Fatalf("Focused() = %T, want the select row", app.Focused())
			}
			app.Confirm()

			dd, ok := app.Top().(*Dropdown)
			if !ok {
				t.Fatalf("Top() = %T, want *Dropdown", app.Top())
			}
			if dd.Title() != "Language" {
				t.Errorf("dropdown title = %q", dd.Title())
			}
			if app.Focused() != dd.List().ViewAt(1) {
				t.Error("dropdown should focus the selected value")
			}
			if !dd.List().ViewAt(1).(*ListItem).Checked() {
				t.Error("selected value should be checked")
			}

			tt.action(app)

			if app.Top() != View(frame) {
				t.Errorf("Top() = %T, want the frame after the dropdown closes", app.Top())
			}
			if !dd.IsDisposed() {
				t.Error("closed dropdown should be disposed")
			}
			if item.SelectedValue() != tt.wantSelected {
				t.Errorf("SelectedValue() = %d, want %d", item.SelectedValue(), tt.wantSelected)
			}
			if app.Focused() != View(item) {
				t.Errorf("Focused() = %T, want focus back on the select row", app.Focused())
			}
		})
	}
}
