package shared

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/l3montree-dev/brandguard/database"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Server = *echo.Group
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

func SanitizeParam(s string) string {
	// remove trailing or leading slashes
	return strings.Trim(s, "/")
}

func DatabaseFactory() (DB, error) {
	cfg := database.GetPoolConfigFromEnv()
	pool := database.NewPgxConnPool(cfg)
	return database.NewGormDB(pool), nil
}

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
// this is obviously not required, but it makes the logs easier to read.
func InitLogger() {
	w := os.Stderr

	// set global logger with custom options
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

func BootstrapOrg(rbac AccessControl, userID string, userRole Role) error {
	if err := rbac.GrantRole(userID, userRole); err != nil {
		return err
	}

	if err := rbac.InheritRole(RoleOwner, RoleAdmin); err != nil { // an owner is an admin
		return err
	}
	if err := rbac.InheritRole(RoleAdmin, RoleMember); err != nil { // an admin is a member
		return err
	}

	if err := rbac.AllowRole(RoleOwner, ObjectOrganization, []Action{
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectOrganization, []Action{
		ActionUpdate,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleAdmin, ObjectProject, []Action{
		ActionCreate,
		ActionRead, // listing all projects
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleMember, ObjectOrganization, []Action{
		ActionRead,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleMember, ObjectProject, []Action{
		ActionRead,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleMember, ObjectAsset, []Action{
		ActionCreate,
		ActionRead,
		ActionUpdate,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleMember, ObjectTask, []Action{
		ActionCreate,
		ActionRead,
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	// reviewing is an admin concern, authors never approve their own work
	if err := rbac.AllowRole(RoleAdmin, ObjectAsset, []Action{
		ActionDelete,
		ActionReview,
	}); err != nil {
		return err
	}

	return nil
}
