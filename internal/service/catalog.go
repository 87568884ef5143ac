package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"event-portal-backend/internal/cache"
	"event-portal-backend/internal/database/models"
	apperrors "event-portal-backend/internal/errors"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/repository"
	"event-portal-backend/internal/scoring"
)

// Catalog CSV column headers, as exported from the registration sheet.
const (
	colName        = "název"
	colCategory    = "kategorie"
	colDescription = "popis"
	colPoints      = "počet bodů"
	colGPS         = "gps"
	colChallenge   = "výzva (dobrovolná)"
)

var gpsLetters = regexp.MustCompile("[a-zA-Z]")

// CatalogService imports and lists the point-bearing catalogs.
type CatalogService struct {
	repo repository.CatalogRepositoryInterface
	log  *logger.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepositoryInterface) *CatalogService {
	return &CatalogService{repo: repo, log: logger.New()}
}

// ListChallenges returns the challenge catalog in import order.
func (s *CatalogService) ListChallenges() ([]scoring.Action, error) {
	challenges, err := s.repo.ListChallenges()
	if err != nil {
		return nil, fmt.Errorf("list challenges: %w", err)
	}
	return scoring.FromChallenges(challenges), nil
}

// ListCheckpoints returns the checkpoint catalog in import order.
func (s *CatalogService) ListCheckpoints() ([]scoring.Action, error) {
	checkpoints, err := s.repo.ListCheckpoints()
	if err != nil {
		return nil, fmt.Errorf("list checkpoints: %w", err)
	}
	return scoring.FromCheckpoints(checkpoints), nil
}

// csvRows reads a header-keyed CSV stream into one map per row.
func csvRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		row := make(map[string]string, len(header))
		for i, field := range record {
			if i < len(header) {
				row[header[i]] = field
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func rowPoints(row map[string]string) (int, error) {
	raw := strings.TrimSpace(row[colPoints])
	points, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &apperrors.DataFormatError{Field: colPoints, Value: raw}
	}
	return points, nil
}

// parseGPS extracts a coordinate pair from a free-form GPS string, e.g.
// "50.0755N, 14.4378E". Letters are stripped, the first two
// comma-separated fields are parsed as floats. Any failure yields nil
// coordinates.
func parseGPS(raw string) (lat, lon *float64, err error) {
	stripped := gpsLetters.ReplaceAllString(raw, "")
	parts := strings.Split(stripped, ",")
	if len(parts) < 2 {
		return nil, nil, &apperrors.DataFormatError{Field: colGPS, Value: raw}
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, nil, &apperrors.DataFormatError{Field: colGPS, Value: raw}
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, nil, &apperrors.DataFormatError{Field: colGPS, Value: raw}
	}
	return &la, &lo, nil
}

// ImportChallenges loads the challenge catalog from CSV. Existing rows
// are kept, rows with an unparsable point value are skipped with a
// warning, and the import continues. Returns the number of rows
// attempted.
func (s *CatalogService) ImportChallenges(r io.Reader) (int, error) {
	rows, err := csvRows(r)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, row := range rows {
		points, err := rowPoints(row)
		if err != nil {
			s.log.WithError(err).WithField("name", row[colName]).Warn("skipping challenge row")
			continue
		}
		challenge := &models.Challenge{
			Name:        row[colName],
			Category:    row[colCategory],
			Description: row[colDescription],
			Points:      points,
		}
		if err := s.repo.InsertChallenge(challenge); err != nil {
			return imported, fmt.Errorf("insert challenge %q: %w", challenge.Name, err)
		}
		imported++
	}
	cache.FlushAll()
	return imported, nil
}

// ImportCheckpoints loads the checkpoint catalog from CSV. A malformed
// GPS value degrades that row to nil coordinates; the import continues.
func (s *CatalogService) ImportCheckpoints(r io.Reader) (int, error) {
	rows, err := csvRows(r)
	if err != nil {
		return 0, err
	}

	imported := 0
	for _, row := range rows {
		points, err := rowPoints(row)
		if err != nil {
			s.log.WithError(err).WithField("name", row[colName]).Warn("skipping checkpoint row")
			continue
		}
		lat, lon, err := parseGPS(row[colGPS])
		if err != nil {
			s.log.WithError(err).WithField("name", row[colName]).Warn("checkpoint without coordinates")
		}
		checkpoint := &models.Checkpoint{
			Name:        row[colName],
			Description: row[colDescription],
			Points:      points,
			Latitude:    lat,
			Longitude:   lon,
			Challenge:   row[colChallenge],
		}
		if err := s.repo.InsertCheckpoint(checkpoint); err != nil {
			return imported, fmt.Errorf("insert checkpoint %q: %w", checkpoint.Name, err)
		}
		imported++
	}
	cache.FlushAll()
	return imported, nil
}
