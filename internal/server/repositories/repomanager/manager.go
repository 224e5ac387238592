package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/careerpath/internal/dbx"
	"github.com/dmitrijs2005/careerpath/internal/server/repositories/roadmap"
	"github.com/dmitrijs2005/careerpath/internal/server/repositories/skills"
	"github.com/dmitrijs2005/careerpath/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Skills(db dbx.DBTX) skills.Repository
	Roadmap(db dbx.DBTX) roadmap.Repository
}
