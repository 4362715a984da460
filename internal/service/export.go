package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/templui/challenge/internal/model"
	"github.com/templui/challenge/internal/repository"
	"github.com/templui/challenge/internal/storage"
)

var exportHeader = []string{"user", "exercise", "value", "unit", "date", "goal"}

// Archive describes an uploaded export.
type Archive struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type ExportService struct {
	rosterRepository repository.RosterRepository
	order            NameOrder
	storage          storage.Storage
	now              func() time.Time
}

// NewExportService creates the export service. store may be nil, in which
// case Archive fails with ErrStorageDisabled.
func NewExportService(
	rosterRepository repository.RosterRepository,
	order NameOrder,
	store storage.Storage,
) *ExportService {
	return &ExportService{
		rosterRepository: rosterRepository,
		order:            order,
		storage:          store,
		now:              time.Now,
	}
}

func (s *ExportService) ArchiveEnabled() bool {
	return s.storage != nil
}

// WriteCSV writes one row per achievement, grouped by participant name.
// Text cells starting with a formula character are prefixed with a quote.
// The unit column is taken from the participant's goal for the exercise and
// is empty for achievements without a matching goal.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer) error {
	roster, err := s.rosterRepository.UsersWithGoalsAndAchievements(ctx)
	if err != nil {
		return storageError("load roster", err)
	}
	s.order.Sort(roster)

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, p := range roster {
		units := goalUnits(p)
		for _, a := range p.Achievements {
			unit, hasGoal := units[a.Exercise]
			record := []string{
				csvText(p.Name),
				csvText(a.Exercise),
				strconv.FormatFloat(a.Value, 'f', -1, 64),
				csvText(unit),
				a.Day(),
				strconv.FormatBool(hasGoal),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write export row: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	return nil
}

// Archive uploads the CSV export to object storage and returns a presigned
// download link.
func (s *ExportService) Archive(ctx context.Context) (*Archive, error) {
	if s.storage == nil {
		return nil, ErrStorageDisabled
	}

	var buf bytes.Buffer
	if err := s.WriteCSV(ctx, &buf); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	key := fmt.Sprintf("exports/%s/%s.csv", now.Format(model.DateLayout), uuid.New().String())

	err := s.storage.Save(ctx, key, bytes.NewReader(buf.Bytes()), "text/csv")
	if err != nil {
		return nil, storageError("upload export", err)
	}

	url, err := s.storage.PresignedURL(ctx, key)
	if err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			slog.Warn("failed to remove unreachable export", "key", key, "error", delErr)
		}
		return nil, storageError("presign export", err)
	}

	slog.Info("export archived", "key", key)
	return &Archive{Key: key, URL: url}, nil
}

// csvText prefixes user-entered text that a spreadsheet would evaluate as a
// formula.
func csvText(v string) string {
	if v != "" && strings.ContainsRune("=+-@\t\r", rune(v[0])) {
		return "'" + v
	}
	return v
}

func goalUnits(p model.Participant) map[string]string {
	units := make(map[string]string, len(p.Goals))
	for _, g := range p.Goals {
		if _, ok := units[g.Exercise]; !ok {
			units[g.Exercise] = g.Unit
		}
	}
	return units
}
