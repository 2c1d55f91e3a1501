package meetingrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reawakn/matchengine/internal/domain/scheduling"
)

// PostgresRepository persists booked meetings in Postgres.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListByUser loads meetings where the user is host or guest. Rows without
// an explicit end get the fixed one-hour duration.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]scheduling.ExistingMeeting, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, host_id, guest_id, COALESCE(title, ''), start_time, end_time, is_confirmed
		FROM meetings
		WHERE host_id = $1 OR guest_id = $1
		ORDER BY start_time
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []scheduling.ExistingMeeting
	for rows.Next() {
		var m scheduling.ExistingMeeting
		var end *time.Time
		if err := rows.Scan(&m.ID, &m.HostID, &m.GuestID, &m.Title, &m.StartUTC, &end, &m.Confirmed); err != nil {
			return nil, err
		}
		m.StartUTC = m.StartUTC.UTC()
		if end != nil {
			m.EndUTC = end.UTC()
		} else {
			m.EndUTC = m.StartUTC.Add(time.Hour)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// Create inserts a pending meeting.
func (r *PostgresRepository) Create(ctx context.Context, meeting scheduling.ExistingMeeting) error {
	if meeting.ID == uuid.Nil {
		meeting.ID = uuid.New()
	}
	if meeting.EndUTC.IsZero() {
		meeting.EndUTC = meeting.StartUTC.Add(time.Hour)
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO meetings (id, host_id, guest_id, title, start_time, end_time, is_confirmed)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, meeting.ID, meeting.HostID, meeting.GuestID, meeting.Title, meeting.StartUTC, meeting.EndUTC, meeting.Confirmed)
	return err
}

var _ scheduling.MeetingRepository = (*PostgresRepository)(nil)
