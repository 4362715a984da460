package service

import (
	"log/slog"
	"sort"

	"github.com/templui/challenge/internal/model"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NameOrder sorts participants by display name using locale collation.
type NameOrder struct {
	tag language.Tag
}

func NewNameOrder(locale string) NameOrder {
	tag, err := language.Parse(locale)
	if err != nil {
		slog.Warn("invalid locale, using root collation", "locale", locale, "error", err)
		tag = language.Und
	}
	return NameOrder{tag: tag}
}

// Sort orders participants in place. Equal names keep their input order.
func (o NameOrder) Sort(participants []model.Participant) {
	// A Collator keeps internal buffers and must not be shared between goroutines.
	c := collate.New(o.tag)
	sort.SliceStable(participants, func(i, j int) bool {
		return c.CompareString(participants[i].Name, participants[j].Name) < 0
	})
}
