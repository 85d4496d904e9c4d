package routine

import "github.com/atomicstack/ace-config/internal/menu"

// LabelDone is the sentinel that ends sequence construction. It is never warned.
const LabelDone = "DONE"

// WarningSet holds the actions flagged as risky to add next.
type WarningSet map[Action]struct{}

// Has reports whether a is flagged.
func (w WarningSet) Has(a Action) bool {
	_, ok := w[a]
	return ok
}

// Actions returns the flagged actions in menu order.
func (w WarningSet) Actions() []Action {
	out := make([]Action, 0, len(w))
	for _, a := range Actions() {
		if w.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// Strings returns the flagged labels in menu order.
func (w WarningSet) Strings() []string {
	return Sequence(w.Actions()).Strings()
}

func (w WarningSet) add(actions ...Action) {
	for _, a := range actions {
		w[a] = struct{}{}
	}
}

// Warnings computes, from scratch, which candidate next actions to flag for
// seq. Rules run in order and only add, except the last which replaces the
// set with every action once any parking action is present.
func Warnings(seq Sequence) WarningSet {
	set := WarningSet{}
	last, ok := seq.Last()
	if ok && last == BackdropScore {
		set.add(ParkCenter)
	}
	if seq.Contains(SpikeMarkScore) {
		set.add(SpikeMarkScore)
	}
	if ok && !last.IsDelay() {
		set.add(Delay1s, Delay5s, SpikeMarkScore)
	}
	for _, a := range seq {
		if a.IsPark() {
			set = WarningSet{}
			set.add(Actions()...)
			break
		}
	}
	return set
}

// ActionOptions builds the action menu for seq: the seven actions with their
// warning emphasis followed by DONE.
func ActionOptions(seq Sequence) []menu.Option {
	warned := Warnings(seq)
	all := Actions()
	opts := make([]menu.Option, 0, len(all)+1)
	for _, a := range all {
		emphasis := menu.EmphasisNormal
		if warned.Has(a) {
			emphasis = menu.EmphasisWarning
		}
		opts = append(opts, menu.Option{Label: string(a), Emphasis: emphasis})
	}
	opts = append(opts, menu.Option{Label: LabelDone, Emphasis: menu.EmphasisConfirm})
	return opts
}
