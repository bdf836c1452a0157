package proposal

import (
	"strings"
	"time"

	"github.com/cineamore/cineamore-backend/internal/domain"
)

// earliestYear is the year of the first motion picture.
const earliestYear = 1888

// DraftInput holds the contributor-supplied movie fields. Nil pointers mean
// "leave the field untouched"; for creates, absent fields stay empty.
type DraftInput struct {
	Title         *string
	Year          *int
	Director      *string
	OriginalTitle *string
	Plot          *string
	Notes         *string
	Genres        []string
	Links         []domain.DownloadLink
}

// ValidateCreate checks the input for a create proposal and collects all errors.
func (i DraftInput) ValidateCreate(maxLinks int) error {
	var errs []domain.FieldError

	if i.Title == nil || strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}

	errs = append(errs, i.commonErrors(maxLinks)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ValidateUpdate checks the input for an update proposal and collects all errors.
// At least one field must be present, and a present title must not be blank.
func (i DraftInput) ValidateUpdate(maxLinks int) error {
	var errs []domain.FieldError

	if i.isEmpty() {
		errs = append(errs, domain.FieldError{Field: "draft", Message: "at least one field required"})
	}
	if i.Title != nil && strings.TrimSpace(*i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "must not be blank"})
	}

	errs = append(errs, i.commonErrors(maxLinks)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i DraftInput) commonErrors(maxLinks int) []domain.FieldError {
	var errs []domain.FieldError

	if i.Title != nil && len(*i.Title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
	}
	if i.Year != nil {
		maxYear := time.Now().Year() + 5
		if *i.Year < earliestYear || *i.Year > maxYear {
			errs = append(errs, domain.FieldError{Field: "year", Message: "implausible year"})
		}
	}
	if maxLinks > 0 && len(i.Links) > maxLinks {
		errs = append(errs, domain.FieldError{Field: "links", Message: "too many links"})
	}
	for _, l := range i.Links {
		if strings.TrimSpace(l.Label) == "" || strings.TrimSpace(l.URL) == "" {
			errs = append(errs, domain.FieldError{Field: "links", Message: "label and url required"})
			break
		}
	}

	return errs
}

func (i DraftInput) isEmpty() bool {
	return i.Title == nil && i.Year == nil && i.Director == nil &&
		i.OriginalTitle == nil && i.Plot == nil && i.Notes == nil &&
		i.Genres == nil && i.Links == nil
}

// toDraft converts validated input into a normalized sparse draft.
func (i DraftInput) toDraft() *domain.MovieDraft {
	draft := &domain.MovieDraft{
		Title:         trimOrNil(i.Title),
		Year:          i.Year,
		Director:      trimOrNil(i.Director),
		OriginalTitle: trimOrNil(i.OriginalTitle),
		Plot:          trimOrNil(i.Plot),
		Notes:         trimOrNil(i.Notes),
	}
	if i.Genres != nil {
		draft.Genres = domain.NormalizeGenres(i.Genres)
	}
	if i.Links != nil {
		links := make([]domain.DownloadLink, 0, len(i.Links))
		for _, l := range i.Links {
			links = append(links, domain.DownloadLink{
				Label: strings.TrimSpace(l.Label),
				URL:   strings.TrimSpace(l.URL),
			})
		}
		draft.Links = links
	}
	return draft
}
