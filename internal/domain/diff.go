package domain

import "slices"

// FieldDiff is the before/after presentation of a single tracked field,
// consumed by the review UI to render a change side by side.
type FieldDiff struct {
	Field   string `json:"field"`
	Before  any    `json:"before"`
	After   any    `json:"after"`
	Changed bool   `json:"changed"`
}

// DiffFields computes the per-field diff between a frozen prior snapshot and
// the proposed draft. Fields the draft leaves untouched show the prior value
// on both sides and Changed=false. List fields (genres, links) compare
// order-sensitively. Pure function; neither argument is modified.
func DiffFields(prior *Movie, proposed *MovieDraft) []FieldDiff {
	diffs := make([]FieldDiff, 0, 8)

	diffs = append(diffs, diffString("title", prior.Title, proposed.Title))
	diffs = append(diffs, diffYear(prior.Year, proposed.Year))
	diffs = append(diffs, diffString("director", prior.Director, proposed.Director))
	diffs = append(diffs, diffString("original_title", prior.OriginalTitle, proposed.OriginalTitle))
	diffs = append(diffs, diffString("plot", prior.Plot, proposed.Plot))
	diffs = append(diffs, diffString("notes", prior.Notes, proposed.Notes))

	genres := FieldDiff{Field: "genres", Before: prior.Genres, After: prior.Genres}
	if proposed.Genres != nil {
		genres.After = proposed.Genres
		genres.Changed = !slices.Equal(prior.Genres, proposed.Genres)
	}
	diffs = append(diffs, genres)

	links := FieldDiff{Field: "links", Before: prior.Links, After: prior.Links}
	if proposed.Links != nil {
		links.After = proposed.Links
		links.Changed = !slices.Equal(prior.Links, proposed.Links)
	}
	diffs = append(diffs, links)

	return diffs
}

func diffString(field, before string, after *string) FieldDiff {
	d := FieldDiff{Field: field, Before: before, After: before}
	if after != nil {
		d.After = *after
		d.Changed = *after != before
	}
	return d
}

func diffYear(before, after *int) FieldDiff {
	d := FieldDiff{Field: "year", Before: yearValue(before), After: yearValue(before)}
	if after != nil {
		d.After = *after
		d.Changed = before == nil || *before != *after
	}
	return d
}

func yearValue(y *int) any {
	if y == nil {
		return nil
	}
	return *y
}
