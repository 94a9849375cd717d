package monitoring

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/printsmith-digest/internal/domain"
)

const (
	DefaultDays         = 7
	maxFeaturedAccounts = 3
)

type RecentSource interface {
	RecentDigests(ctx context.Context, days int) ([]domain.RecentDigest, error)
}

// ExportRecord é um digest recebido pela API, já convertido para o fuso local
type ExportRecord struct {
	Date             string     `json:"date"`
	Source           string     `json:"source"`
	Scheduled        bool       `json:"scheduled"`
	ReceivedAt       *time.Time `json:"receivedAt,omitempty"`
	RawReceivedAt    string     `json:"rawReceivedAt,omitempty"`
	Age              string     `json:"age,omitempty"`
	FeaturedAccounts []string   `json:"featuredAccounts"`
}

type Summary struct {
	Days    int            `json:"days"`
	Count   int            `json:"count"`
	Exports []ExportRecord `json:"exports"`
	Latest  *ExportRecord  `json:"latest,omitempty"`
}

// LatestWasScheduled indica se a exportação mais recente veio do agendamento
func (s *Summary) LatestWasScheduled() bool {
	return s.Latest != nil && s.Latest.Scheduled
}

type Service struct {
	source   RecentSource
	location *time.Location
	now      func() time.Time
}

func NewService(source RecentSource, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}

	return &Service{
		source:   source,
		location: location,
		now:      time.Now,
	}
}

// LastExports lista os digests recebidos nos últimos dias, do mais recente para o mais antigo
func (s *Service) LastExports(ctx context.Context, days int) (*Summary, error) {
	if days <= 0 {
		days = DefaultDays
	}

	digests, err := s.source.RecentDigests(ctx, days)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar exportações recentes")
	}

	now := s.now().In(s.location)
	records := make([]ExportRecord, 0, len(digests))
	for _, digest := range digests {
		records = append(records, s.toRecord(digest, now))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return newer(records[i], records[j])
	})

	summary := &Summary{
		Days:    days,
		Count:   len(records),
		Exports: records,
	}
	if len(records) > 0 {
		summary.Latest = &records[0]
	}

	logrus.WithFields(logrus.Fields{
		"days":  days,
		"count": summary.Count,
	}).Debug("Exportações recentes consultadas")

	return summary, nil
}

func (s *Service) toRecord(digest domain.RecentDigest, now time.Time) ExportRecord {
	source := strings.TrimSpace(digest.ExportSource)
	if source == "" {
		source = "unknown"
	}

	record := ExportRecord{
		Date:             digest.Date,
		Source:           source,
		Scheduled:        source == string(domain.ExportSourceScheduled),
		FeaturedAccounts: featured(digest.AccountNames),
	}

	if digest.ReceivedAt == "" {
		return record
	}

	receivedAt, err := time.Parse(time.RFC3339Nano, digest.ReceivedAt)
	if err != nil {
		logrus.WithError(err).WithField("receivedAt", digest.ReceivedAt).Warn("Horário de recebimento inválido")
		record.RawReceivedAt = digest.ReceivedAt
		return record
	}

	local := receivedAt.In(s.location)
	record.ReceivedAt = &local
	record.Age = humanize.RelTime(local, now, "ago", "from now")

	return record
}

func featured(names []string) []string {
	if len(names) > maxFeaturedAccounts {
		names = names[:maxFeaturedAccounts]
	}
	return append([]string{}, names...)
}

// Registros sem horário válido ficam depois, ordenados pela data do digest
func newer(a, b ExportRecord) bool {
	switch {
	case a.ReceivedAt != nil && b.ReceivedAt != nil:
		return a.ReceivedAt.After(*b.ReceivedAt)
	case a.ReceivedAt != nil:
		return true
	case b.ReceivedAt != nil:
		return false
	default:
		return a.Date > b.Date
	}
}
