package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tinyxi/pethatch/internal/game/pet"
	"github.com/tinyxi/pethatch/internal/game/species"
)

// ErrPetNotFound is returned when a pet lookup yields no results.
var ErrPetNotFound = errors.New("pet not found")

// ErrPetExists is returned when creating a pet for an owner who already has one.
var ErrPetExists = errors.New("owner already has a pet")

// PetRepository provides pet persistence keyed by owner ID.
type PetRepository struct {
	db *pgxpool.Pool
}

// NewPetRepository creates a PetRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewPetRepository(db *pgxpool.Pool) *PetRepository {
	return &PetRepository{db: db}
}

const petColumns = `owner_name, nickname, species_id, stage, level, exp,
	hp, max_hp, attack, defense, speed, crit_rate, crit_damage,
	hunger, mood, coins, auto_heal_threshold, skills,
	last_battle_time, last_updated, created_at`

// skillsValue maps a nil skill list to an empty array so it satisfies the
// NOT NULL column.
func skillsValue(p *pet.Pet) []string {
	if p.Skills == nil {
		return []string{}
	}
	return p.Skills
}

// Create inserts a new pet record for ownerID.
//
// Precondition: ownerID must be non-empty; p must satisfy the Pet invariants.
// Postcondition: Returns nil on success or ErrPetExists if the owner already
// has a pet.
func (r *PetRepository) Create(ctx context.Context, ownerID string, p *pet.Pet) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO pets (owner_id, `+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)`,
		ownerID, p.Owner, p.Nickname, p.SpeciesID, int(p.Stage), p.Level, p.Exp,
		p.HP, p.MaxHP, p.Attack, p.Defense, p.Speed, p.CritRate, p.CritDamage,
		p.Hunger, p.Mood, p.Coins, p.AutoHealThreshold, skillsValue(p),
		p.LastBattleTime, p.LastUpdated, p.CreatedAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return ErrPetExists
		}
		return fmt.Errorf("inserting pet: %w", err)
	}
	return nil
}

// Load retrieves the pet owned by ownerID.
// A NULL skills column is recovered as an empty skill list rather than an
// error.
//
// Precondition: ownerID must be non-empty.
// Postcondition: Returns the Pet or ErrPetNotFound.
func (r *PetRepository) Load(ctx context.Context, ownerID string) (*pet.Pet, error) {
	var p pet.Pet
	var stage int
	err := r.db.QueryRow(ctx, `
		SELECT `+petColumns+`
		FROM pets WHERE owner_id = $1`,
		ownerID,
	).Scan(
		&p.Owner, &p.Nickname, &p.SpeciesID, &stage, &p.Level, &p.Exp,
		&p.HP, &p.MaxHP, &p.Attack, &p.Defense, &p.Speed, &p.CritRate, &p.CritDamage,
		&p.Hunger, &p.Mood, &p.Coins, &p.AutoHealThreshold, &p.Skills,
		&p.LastBattleTime, &p.LastUpdated, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, fmt.Errorf("querying pet: %w", err)
	}
	p.Stage = species.Stage(stage)
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return &p, nil
}

// Save upserts the full pet state for ownerID.
// The in-memory pet is not authoritative until this returns nil.
//
// Precondition: ownerID must be non-empty.
// Postcondition: The stored row matches p field for field.
func (r *PetRepository) Save(ctx context.Context, ownerID string, p *pet.Pet) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO pets (owner_id, `+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22)
		ON CONFLICT (owner_id) DO UPDATE SET
			owner_name = EXCLUDED.owner_name,
			nickname = EXCLUDED.nickname,
			species_id = EXCLUDED.species_id,
			stage = EXCLUDED.stage,
			level = EXCLUDED.level,
			exp = EXCLUDED.exp,
			hp = EXCLUDED.hp,
			max_hp = EXCLUDED.max_hp,
			attack = EXCLUDED.attack,
			defense = EXCLUDED.defense,
			speed = EXCLUDED.speed,
			crit_rate = EXCLUDED.crit_rate,
			crit_damage = EXCLUDED.crit_damage,
			hunger = EXCLUDED.hunger,
			mood = EXCLUDED.mood,
			coins = EXCLUDED.coins,
			auto_heal_threshold = EXCLUDED.auto_heal_threshold,
			skills = EXCLUDED.skills,
			last_battle_time = EXCLUDED.last_battle_time,
			last_updated = EXCLUDED.last_updated`,
		ownerID, p.Owner, p.Nickname, p.SpeciesID, int(p.Stage), p.Level, p.Exp,
		p.HP, p.MaxHP, p.Attack, p.Defense, p.Speed, p.CritRate, p.CritDamage,
		p.Hunger, p.Mood, p.Coins, p.AutoHealThreshold, skillsValue(p),
		p.LastBattleTime, p.LastUpdated, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving pet: %w", err)
	}
	return nil
}

// Delete removes the pet owned by ownerID. Admin-level operation.
//
// Postcondition: Returns ErrPetNotFound if no row was deleted.
func (r *PetRepository) Delete(ctx context.Context, ownerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pets WHERE owner_id = $1`, ownerID)
	if err != nil {
		return fmt.Errorf("deleting pet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPetNotFound
	}
	return nil
}

// isDuplicateKeyError reports whether err is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
