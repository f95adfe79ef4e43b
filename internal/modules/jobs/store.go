// README: Job store backed by PostgreSQL.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ankago/internal/types"
)

var ErrNotFound = errors.New("job not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const jobColumns = `id, origin_province, origin_district, destination_province, destination_district,
       vehicle_type, body_type, cargo_type, weight_tons, is_refrigerated, is_urgent,
       contact_phone, posted_at`

// buildSearchQuery assembles the filtered SELECT. Kept as a pure function so
// the WHERE construction is testable without a database.
func buildSearchQuery(p SearchParams) (string, []any) {
	var conds []string
	var args []any

	add := func(expr string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	if p.Origin != "" {
		add("origin_province = $%d", p.Origin)
	}
	if p.OriginDistrict != "" {
		add("origin_district = $%d", p.OriginDistrict)
	}
	if p.Destination != "" {
		add("destination_province = $%d", p.Destination)
	}
	if p.DestinationDistrict != "" {
		add("destination_district = $%d", p.DestinationDistrict)
	}
	if p.VehicleType != "" {
		add("vehicle_type = $%d", p.VehicleType)
	}
	if p.BodyType != "" {
		add("body_type = $%d", p.BodyType)
	}
	if p.CargoType != "" {
		add("cargo_type = $%d", p.CargoType)
	}
	if p.IsRefrigerated {
		conds = append(conds, "is_refrigerated = true")
	}
	if p.IsUrgent {
		conds = append(conds, "is_urgent = true")
	}
	if p.MaxWeightTons > 0 {
		add("weight_tons <= $%d", p.MaxWeightTons)
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, p.Limit)
	limitArg := len(args)
	args = append(args, p.Offset)
	offsetArg := len(args)

	sql := fmt.Sprintf(`
        SELECT %s, count(*) OVER() AS total
        FROM jobs
        %s
        ORDER BY is_urgent DESC, posted_at DESC
        LIMIT $%d OFFSET $%d`, jobColumns, where, limitArg, offsetArg)
	return sql, args
}

func (s *Store) Search(ctx context.Context, p SearchParams) (SearchResult, error) {
	sql, args := buildSearchQuery(p)
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return SearchResult{}, fmt.Errorf("search jobs: %w", err)
	}
	defer rows.Close()

	var res SearchResult
	for rows.Next() {
		var j Job
		var total int
		if err := scanJob(rows, &j, &total); err != nil {
			return SearchResult{}, fmt.Errorf("scan job: %w", err)
		}
		res.Jobs = append(res.Jobs, j)
		res.TotalCount = total
	}
	return res, rows.Err()
}

func (s *Store) GetByID(ctx context.Context, id types.ID) (*Job, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+jobColumns+`
        FROM jobs
        WHERE id = $1`, string(id))

	var j Job
	err := row.Scan(
		&j.ID, &j.OriginProvince, &j.OriginDistrict, &j.DestinationProvince, &j.DestinationDistrict,
		&j.VehicleType, &j.BodyType, &j.CargoType, &j.WeightTons, &j.IsRefrigerated, &j.IsUrgent,
		&j.ContactPhone, &j.PostedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func scanJob(rows pgx.Rows, j *Job, total *int) error {
	return rows.Scan(
		&j.ID, &j.OriginProvince, &j.OriginDistrict, &j.DestinationProvince, &j.DestinationDistrict,
		&j.VehicleType, &j.BodyType, &j.CargoType, &j.WeightTons, &j.IsRefrigerated, &j.IsUrgent,
		&j.ContactPhone, &j.PostedAt,
		total,
	)
}
