package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/careerpath/internal/common"
	"github.com/dmitrijs2005/careerpath/internal/dbx"
	"github.com/dmitrijs2005/careerpath/internal/server/models"
	"github.com/dmitrijs2005/careerpath/internal/server/repositories/repomanager"
)

// Seed outcomes reported by POST /init.
const (
	SeedCreated = "Data Initialized"
	SeedSkipped = "Data already exists"
)

// Password hashing seams; tests lower the cost or inject failures.
var (
	hashPassword = func(pw []byte) ([]byte, error) {
		return bcrypt.GenerateFromPassword(pw, bcrypt.DefaultCost)
	}
	comparePassword = bcrypt.CompareHashAndPassword
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register stores a new account with a bcrypt hash of the password. A taken
// email yields common.ErrAlreadyExists.
func (s *UserService) Register(ctx context.Context, nu models.NewUser) (*models.User, error) {
	return s.register(ctx, s.db, nu)
}

func (s *UserService) register(ctx context.Context, db dbx.DBTX, nu models.NewUser) (*models.User, error) {
	hash, err := hashPassword([]byte(nu.Password))
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	goal := strings.TrimSpace(nu.CareerGoal)
	if goal == "" {
		goal = common.DefaultCareerGoal
	}

	user := &models.User{
		Name:         strings.TrimSpace(nu.Name),
		Email:        strings.TrimSpace(nu.Email),
		PasswordHash: string(hash),
		CareerGoal:   goal,
	}

	user, err = s.repomanager.Users(db).Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

// Login returns the account when the password matches. Unknown emails and
// wrong passwords both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInternal, err)
	}

	if err := comparePassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

// GetByEmail returns common.ErrNotFound for an unknown email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, email)
}

// Seed creates the demo account and its skills when no user exists yet.
// Everything happens in one transaction. The result is SeedCreated or
// SeedSkipped.
func (s *UserService) Seed(ctx context.Context) (string, error) {
	result := SeedSkipped

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		n, err := s.repomanager.Users(tx).Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		user, err := s.register(ctx, tx, demoUser)
		if err != nil {
			return err
		}

		repo := s.repomanager.Skills(tx)
		for _, sk := range demoSkills {
			sk.UserID = user.ID
			if _, err := repo.Create(ctx, &sk); err != nil {
				return fmt.Errorf("error creating skill %q: %w", sk.Name, err)
			}
		}

		result = SeedCreated
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

var demoUser = models.NewUser{
	Name:       "Anamika Singh",
	Email:      "anamika@example.com",
	Password:   "password",
	CareerGoal: common.DefaultCareerGoal,
}

var demoSkills = []models.Skill{
	{Name: "Java", Category: "Backend", Level: models.LevelAdvanced},
	{Name: "React", Category: "Frontend", Level: models.LevelBeginner},
	{Name: "SQL", Category: "Database", Level: models.LevelIntermediate},
}
