package component

import (
	"github.com/rohanthewiz/logger"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Delta summarizes the difference between two renders of an instance.
type Delta struct {
	Changed  bool
	Inserted int
	Deleted  int
}

func diffMarkup(prev, next string) Delta {
	if prev == next {
		return Delta{}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(prev, next, false)

	d := Delta{Changed: true}
	for _, df := range diffs {
		switch df.Type {
		case diffmatchpatch.DiffInsert:
			d.Inserted += len(df.Text)
		case diffmatchpatch.DiffDelete:
			d.Deleted += len(df.Text)
		}
	}

	logger.Debug("Markup changed", "inserted", d.Inserted, "deleted", d.Deleted,
		"edit_distance", dmp.DiffLevenshtein(diffs))
	return d
}
