package session

import (
	"fmt"

	"github.com/andareed/siftly-timeline/filter"
	"github.com/andareed/siftly-timeline/timeline"
	"github.com/andareed/siftly-timeline/timerange"
)

// Env is the read-only context a transition may consult.
type Env struct {
	ActionTypes []string
	Index       *timeline.TimeIndex
	Resolver    *timerange.Resolver
	Criteria    filter.Criteria // currently applied
}

// Effect is what a transition asks of the outside world. A nil Criteria
// means the active filter is unchanged.
type Effect struct {
	Criteria *filter.Criteria
	Notice   string
	Quit     bool
}

func commit(c filter.Criteria, notice string) Effect {
	return Effect{Criteria: &c, Notice: notice}
}

// Transition computes the next state for key. It never mutates env or s.
func Transition(env Env, s State, key Key) (State, Effect) {
	switch st := s.(type) {
	case Search:
		return search(env, st, key)
	case ActionFilter:
		return actionFilter(env, st, key)
	case TimePresets:
		return timePresets(env, st, key)
	case CustomPick:
		return customPick(env, st, key)
	case CustomType:
		return customType(env, st, key)
	default:
		return normal(env, key)
	}
}

func normal(env Env, key Key) (State, Effect) {
	switch key.Kind {
	case KeyQuit:
		return Normal{}, Effect{Quit: true}
	case KeyBeginSearch:
		return Search{Text: env.Criteria.SearchText()}, Effect{}
	case KeyBeginActionFilter:
		cursor := 0
		for i, at := range env.ActionTypes {
			if at == env.Criteria.ActionType {
				cursor = i
				break
			}
		}
		return ActionFilter{Cursor: cursor}, Effect{}
	case KeyBeginTime:
		return TimePresets{}, Effect{}
	case KeyClearAll:
		if env.Criteria.IsZero() {
			return Normal{}, Effect{Notice: "Nothing to clear"}
		}
		return Normal{}, commit(filter.Criteria{}, "All filters cleared")
	}
	return Normal{}, Effect{}
}

func search(env Env, st Search, key Key) (State, Effect) {
	switch key.Kind {
	case KeyCancel:
		return Normal{}, Effect{}
	case KeyConfirm:
		c := env.Criteria.Clone()
		c.Terms = filter.ParseTerms(st.Text)
		if len(c.Terms) == 0 {
			return Normal{}, commit(c, "Search cleared")
		}
		return Normal{}, commit(c, fmt.Sprintf("Search: %q", c.SearchText()))
	case KeyRune:
		return Search{Text: st.Text + string(key.Rune)}, Effect{}
	case KeyBackspace:
		return Search{Text: dropLastRune(st.Text)}, Effect{}
	}
	return st, Effect{}
}

func actionFilter(env Env, st ActionFilter, key Key) (State, Effect) {
	switch key.Kind {
	case KeyUp, KeyDown:
		st.Cursor = move(st.Cursor, key, len(env.ActionTypes))
		return st, Effect{}
	case KeyConfirm:
		if len(env.ActionTypes) == 0 {
			return Normal{}, Effect{}
		}
		c := env.Criteria.Clone()
		c.ActionType = env.ActionTypes[clampIndex(st.Cursor, len(env.ActionTypes))]
		return Normal{}, commit(c, "Action type: "+c.ActionType)
	case KeyCancel:
		if env.Criteria.ActionType == "" {
			return Normal{}, Effect{}
		}
		c := env.Criteria.Clone()
		c.ActionType = ""
		return Normal{}, commit(c, "Action type filter cleared")
	}
	return st, Effect{}
}

func timePresets(env Env, st TimePresets, key Key) (State, Effect) {
	switch key.Kind {
	case KeyUp, KeyDown:
		st.Cursor = move(st.Cursor, key, len(TimeMenu()))
		return st, Effect{}
	case KeyCancel:
		return Normal{}, Effect{}
	case KeyConfirm:
		switch i := clampIndex(st.Cursor, len(TimeMenu())); {
		case i < len(timerange.Presets):
			p := timerange.Presets[i]
			iv := env.Resolver.Preset(p)
			c := env.Criteria.Clone()
			c.Time = &iv
			return Normal{}, commit(c, "Time: "+p.String())
		case i == customPickIndex():
			p, err := timerange.NewPicker(env.Index)
			if err != nil {
				return st, Effect{Notice: "Custom pick unavailable: " + err.Error()}
			}
			return CustomPick{Picker: p}, Effect{}
		default:
			return CustomType{}, Effect{}
		}
	}
	return st, Effect{}
}

func customPick(env Env, st CustomPick, key Key) (State, Effect) {
	switch key.Kind {
	case KeyUp, KeyDown:
		st.Cursor = move(st.Cursor, key, len(st.Picker.Options()))
		return st, Effect{}
	case KeyCancel:
		committed := st.Picker.Committed()
		prev, ok := st.Picker.Back()
		if !ok {
			return TimePresets{Cursor: customPickIndex()}, Effect{}
		}
		return CustomPick{Picker: prev, Cursor: prev.IndexOf(committed[len(committed)-1])}, Effect{}
	case KeyConfirm:
		next, iv, err := st.Picker.Commit(st.Cursor)
		if err != nil {
			return st, Effect{}
		}
		if iv == nil {
			return CustomPick{Picker: next}, Effect{}
		}
		c := env.Criteria.Clone()
		c.Time = iv
		return Normal{}, commit(c, "Time: "+iv.String())
	}
	return st, Effect{}
}

func customType(env Env, st CustomType, key Key) (State, Effect) {
	switch key.Kind {
	case KeyCancel:
		return Normal{}, Effect{}
	case KeyRune:
		return CustomType{Text: st.Text + string(key.Rune)}, Effect{}
	case KeyBackspace:
		return CustomType{Text: dropLastRune(st.Text)}, Effect{}
	case KeyConfirm:
		expr, err := env.Resolver.Parse(st.Text)
		if err != nil {
			return CustomType{Text: st.Text, Err: err.Error()}, Effect{}
		}
		c := env.Criteria.Clone()
		if expr.Clear {
			c.Time = nil
			return Normal{}, commit(c, "Time filter cleared")
		}
		c.Time = &expr.Interval
		return Normal{}, commit(c, "Time: "+expr.Label)
	}
	return st, Effect{}
}

func move(cursor int, key Key, n int) int {
	if n == 0 {
		return 0
	}
	if key.Kind == KeyUp {
		cursor--
	} else {
		cursor++
	}
	return clampIndex(cursor, n)
}

func clampIndex(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}
