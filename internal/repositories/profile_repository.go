package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"community-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepository struct {
	DB *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// SaveMemberDetails upserts the member_details section
func (r *ProfileRepository) SaveMemberDetails(ctx context.Context, userID int, d *models.MemberDetails) error {
	education, err := json.Marshal(d.Education)
	if err != nil {
		return err
	}
	professions, err := json.Marshal(d.Professions)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO member_details(user_id, first_name, second_name, gender, date_of_birth, email, phone,
			country_code, address_line, district, pin_code, post_office, kulam, kula_deivam, kaani,
			education, professions, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			second_name = EXCLUDED.second_name,
			gender = EXCLUDED.gender,
			date_of_birth = EXCLUDED.date_of_birth,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			country_code = EXCLUDED.country_code,
			address_line = EXCLUDED.address_line,
			district = EXCLUDED.district,
			pin_code = EXCLUDED.pin_code,
			post_office = EXCLUDED.post_office,
			kulam = EXCLUDED.kulam,
			kula_deivam = EXCLUDED.kula_deivam,
			kaani = EXCLUDED.kaani,
			education = EXCLUDED.education,
			professions = EXCLUDED.professions,
			updated_at = NOW()
	`
	_, err = r.DB.Exec(ctx, query, userID,
		d.FirstName, d.SecondName, d.Gender, d.DateOfBirth, d.Email, d.Phone,
		d.CountryCode, d.AddressLine, d.District, d.PinCode, d.PostOffice,
		d.Kulam, d.KulaDeivam, d.Kaani, education, professions,
	)
	return err
}

// GetMemberDetails returns the saved member_details section, nil if unsaved
func (r *ProfileRepository) GetMemberDetails(ctx context.Context, userID int) (*models.MemberDetails, error) {
	query := `
		SELECT first_name, second_name, gender, date_of_birth, email, phone, country_code,
		       address_line, district, pin_code, post_office, kulam, kula_deivam, kaani,
		       education, professions
		FROM member_details WHERE user_id = $1
	`

	return scanMemberDetails(r.DB.QueryRow(ctx, query, userID))
}

// scanMemberDetails maps a missing row to a nil section rather than an
// error. Fresh accounts have no member_details row yet
func scanMemberDetails(row pgx.Row) (*models.MemberDetails, error) {
	var d models.MemberDetails
	var education, professions []byte
	err := row.Scan(
		&d.FirstName, &d.SecondName, &d.Gender, &d.DateOfBirth, &d.Email, &d.Phone, &d.CountryCode,
		&d.AddressLine, &d.District, &d.PinCode, &d.PostOffice, &d.Kulam, &d.KulaDeivam, &d.Kaani,
		&education, &professions,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(education, &d.Education); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(professions, &d.Professions); err != nil {
		return nil, err
	}
	return &d, nil
}

// SaveSpouseDetails upserts the spouse_details section
func (r *ProfileRepository) SaveSpouseDetails(ctx context.Context, userID int, d *models.SpouseDetails) error {
	education, err := json.Marshal(d.Education)
	if err != nil {
		return err
	}
	professions, err := json.Marshal(d.Professions)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO spouse_details(user_id, first_name, second_name, gender, date_of_birth,
			kulam, kula_deivam, kaani, education, professions, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			second_name = EXCLUDED.second_name,
			gender = EXCLUDED.gender,
			date_of_birth = EXCLUDED.date_of_birth,
			kulam = EXCLUDED.kulam,
			kula_deivam = EXCLUDED.kula_deivam,
			kaani = EXCLUDED.kaani,
			education = EXCLUDED.education,
			professions = EXCLUDED.professions,
			updated_at = NOW()
	`
	_, err = r.DB.Exec(ctx, query, userID,
		d.FirstName, d.SecondName, d.Gender, d.DateOfBirth,
		d.Kulam, d.KulaDeivam, d.Kaani, education, professions,
	)
	return err
}

// GetSpouseDetails returns the saved spouse_details section, nil if unsaved
func (r *ProfileRepository) GetSpouseDetails(ctx context.Context, userID int) (*models.SpouseDetails, error) {
	query := `
		SELECT first_name, second_name, gender, date_of_birth, kulam, kula_deivam, kaani,
		       education, professions
		FROM spouse_details WHERE user_id = $1
	`

	return scanSpouseDetails(r.DB.QueryRow(ctx, query, userID))
}

// scanSpouseDetails maps a missing row to a nil section. Unmarried members
// never have one
func scanSpouseDetails(row pgx.Row) (*models.SpouseDetails, error) {
	var d models.SpouseDetails
	var education, professions []byte
	err := row.Scan(
		&d.FirstName, &d.SecondName, &d.Gender, &d.DateOfBirth,
		&d.Kulam, &d.KulaDeivam, &d.Kaani, &education, &professions,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(education, &d.Education); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(professions, &d.Professions); err != nil {
		return nil, err
	}
	return &d, nil
}

// UpsertFamilyTreePerson writes one relative, keyed by (user_id, role)
func (r *ProfileRepository) UpsertFamilyTreePerson(ctx context.Context, userID int, p *models.FamilyTreePerson) error {
	query := `
		INSERT INTO family_tree_persons(user_id, role, first_name, second_name, native_place,
			kulam, kula_deivam, kaani, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (user_id, role) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			second_name = EXCLUDED.second_name,
			native_place = EXCLUDED.native_place,
			kulam = EXCLUDED.kulam,
			kula_deivam = EXCLUDED.kula_deivam,
			kaani = EXCLUDED.kaani,
			updated_at = NOW()
	`
	_, err := r.DB.Exec(ctx, query, userID, p.Role,
		p.FirstName, p.SecondName, p.NativePlace, p.Kulam, p.KulaDeivam, p.Kaani,
	)
	return err
}

// UpdateKulamFields overwrites only the clan triple of a relative, creating
// the row if the role has not been entered yet (copy-map propagation)
func (r *ProfileRepository) UpdateKulamFields(ctx context.Context, userID int, role string, k models.KulamFields) error {
	query := `
		INSERT INTO family_tree_persons(user_id, role, first_name, second_name, native_place,
			kulam, kula_deivam, kaani, updated_at)
		VALUES($1, $2, '', '', '', $3, $4, $5, NOW())
		ON CONFLICT (user_id, role) DO UPDATE SET
			kulam = EXCLUDED.kulam,
			kula_deivam = EXCLUDED.kula_deivam,
			kaani = EXCLUDED.kaani,
			updated_at = NOW()
	`
	_, err := r.DB.Exec(ctx, query, userID, role, k.Kulam, k.KulaDeivam, k.Kaani)
	return err
}

// ListFamilyTreePersons returns relatives whose role carries the given prefix
// (member_ or spouse_), plus the anchor role itself
func (r *ProfileRepository) ListFamilyTreePersons(ctx context.Context, userID int, rolePrefix string) ([]models.FamilyTreePerson, error) {
	query := `
		SELECT role, first_name, second_name, native_place, kulam, kula_deivam, kaani
		FROM family_tree_persons
		WHERE user_id = $1 AND role LIKE $2 || '%'
		ORDER BY role
	`

	rows, err := r.DB.Query(ctx, query, userID, rolePrefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var persons []models.FamilyTreePerson
	for rows.Next() {
		var p models.FamilyTreePerson
		if err := rows.Scan(&p.Role, &p.FirstName, &p.SecondName, &p.NativePlace, &p.Kulam, &p.KulaDeivam, &p.Kaani); err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}

	return persons, rows.Err()
}

// MarkSectionComplete records a successful section save
func (r *ProfileRepository) MarkSectionComplete(ctx context.Context, userID int, section string) error {
	query := `
		INSERT INTO profile_section_status(user_id, section, complete, completed_at)
		VALUES($1, $2, TRUE, NOW())
		ON CONFLICT (user_id, section) DO UPDATE SET complete = TRUE, completed_at = NOW()
	`
	_, err := r.DB.Exec(ctx, query, userID, section)
	return err
}

// GetSectionStatuses returns the completion map for a user
func (r *ProfileRepository) GetSectionStatuses(ctx context.Context, userID int) (map[string]bool, error) {
	query := `SELECT section, complete FROM profile_section_status WHERE user_id = $1`

	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[string]bool)
	for rows.Next() {
		var section string
		var complete bool
		if err := rows.Scan(&section, &complete); err != nil {
			return nil, err
		}
		statuses[section] = complete
	}

	return statuses, rows.Err()
}
