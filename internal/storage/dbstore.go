package storage

import (
	"fmt"
	"log"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/config"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DBStore keeps the identity map resident and mirrors it to a relational
// database through GORM. Save flushes the whole map as an upsert, the
// relational twin of the file strategy's wholesale snapshot rewrite.
type DBStore struct {
	db    *gorm.DB
	ident *identity
}

// NewDBStore establishes a database connection based on the configured
// DB_TYPE and returns an engine that is not Ready until Reload has run.
func NewDBStore(cfg *config.Config) (*DBStore, error) {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "mysql", "mariadb":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = mysql.Open(dsn)

	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBDatabase,
			cfg.DBPort,
		)
		dialector = postgres.Open(dsn)

	case "sqlite":
		// For SQLite, DBDatabase is the file path
		dialector = sqlite.Open(cfg.DBDatabase)

	case "sqlserver", "mssql":
		dsn := fmt.Sprintf("sqlserver://%s:%s@%s:%s?database=%s",
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBHost,
			cfg.DBPort,
			cfg.DBDatabase,
		)
		dialector = sqlserver.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB for connection pool configuration
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBConnectionLimit)
	sqlDB.SetMaxIdleConns(cfg.DBConnectionLimit / 2)

	log.Printf("Connected to %s database: %s", cfg.DBType, cfg.DBDatabase)

	return &DBStore{
		db:    db,
		ident: newIdentity(),
	}, nil
}

func (s *DBStore) All(kind models.Kind) map[string]models.Entity {
	return s.ident.all(kind)
}

func (s *DBStore) Get(kind models.Kind, id string) models.Entity {
	return s.ident.get(kind, id)
}

func (s *DBStore) New(e models.Entity) {
	s.ident.put(e)
}

// Save upserts every resident entity in foreign-key dependency order, then
// reconciles each Place's amenity links with the place_amenity join table.
func (s *DBStore) Save() error {
	for _, kind := range models.Kinds {
		for _, e := range s.ident.snapshot(kind) {
			err := s.db.
				Omit(clause.Associations).
				Clauses(clause.OnConflict{UpdateAll: true}).
				Create(e).Error
			if err != nil {
				return fmt.Errorf("dbstore save %s: %w", Key(e), err)
			}
		}
	}

	for _, e := range s.ident.snapshot(models.KindPlace) {
		p := e.(*models.Place)
		amenities := s.resolveAmenities(p)
		if err := s.db.Model(p).Association("Amenities").Replace(amenities); err != nil {
			return fmt.Errorf("dbstore save links %s: %w", Key(p), err)
		}
	}
	return nil
}

// resolveAmenities maps a place's link list to resident Amenity instances,
// dropping ids whose amenity is gone.
func (s *DBStore) resolveAmenities(p *models.Place) []*models.Amenity {
	amenities := make([]*models.Amenity, 0, len(p.AmenityIDs))
	for _, id := range p.AmenityIDs {
		if a := s.ident.get(models.KindAmenity, id); a != nil {
			amenities = append(amenities, a.(*models.Amenity))
		}
	}
	return amenities
}

// Delete removes the entity from the identity map and its row from the
// database, clearing place_amenity links first. Not-resident entities are
// a no-op.
func (s *DBStore) Delete(e models.Entity) error {
	if !s.ident.remove(e) {
		return nil
	}

	switch t := e.(type) {
	case *models.Place:
		if err := s.db.Model(t).Association("Amenities").Clear(); err != nil {
			return fmt.Errorf("dbstore unlink %s: %w", Key(e), err)
		}
	case *models.Amenity:
		if err := s.db.Exec("DELETE FROM place_amenity WHERE amenity_id = ?", t.ID).Error; err != nil {
			return fmt.Errorf("dbstore unlink %s: %w", Key(e), err)
		}
		for _, pe := range s.ident.snapshot(models.KindPlace) {
			pe.(*models.Place).RemoveAmenity(t.ID)
		}
	}

	if err := s.db.Delete(e).Error; err != nil {
		return fmt.Errorf("dbstore delete %s: %w", Key(e), err)
	}
	return nil
}

func (s *DBStore) Count(kind models.Kind) int {
	return s.ident.count(kind)
}

// Reload ensures schema objects exist and hydrates the identity map from
// the database.
func (s *DBStore) Reload() error {
	err := s.db.AutoMigrate(
		&models.State{},
		&models.City{},
		&models.User{},
		&models.Amenity{},
		&models.Place{},
		&models.Review{},
	)
	if err != nil {
		return fmt.Errorf("dbstore migrate: %w", err)
	}

	objects := make(map[string]models.Entity)

	var states []*models.State
	if err := s.db.Find(&states).Error; err != nil {
		return fmt.Errorf("dbstore load states: %w", err)
	}
	for _, st := range states {
		objects[Key(st)] = st
	}

	var cities []*models.City
	if err := s.db.Find(&cities).Error; err != nil {
		return fmt.Errorf("dbstore load cities: %w", err)
	}
	for _, c := range cities {
		objects[Key(c)] = c
	}

	var users []*models.User
	if err := s.db.Find(&users).Error; err != nil {
		return fmt.Errorf("dbstore load users: %w", err)
	}
	for _, u := range users {
		objects[Key(u)] = u
	}

	var amenities []*models.Amenity
	if err := s.db.Find(&amenities).Error; err != nil {
		return fmt.Errorf("dbstore load amenities: %w", err)
	}
	for _, a := range amenities {
		objects[Key(a)] = a
	}

	var places []*models.Place
	if err := s.db.Preload("Amenities").Find(&places).Error; err != nil {
		return fmt.Errorf("dbstore load places: %w", err)
	}
	for _, p := range places {
		p.AmenityIDs = make([]string, 0, len(p.Amenities))
		for _, a := range p.Amenities {
			p.AmenityIDs = append(p.AmenityIDs, a.ID)
		}
		// AmenityIDs is authoritative while resident; the preloaded
		// instances would go stale against the identity map.
		p.Amenities = nil
		objects[Key(p)] = p
	}

	var reviews []*models.Review
	if err := s.db.Find(&reviews).Error; err != nil {
		return fmt.Errorf("dbstore load reviews: %w", err)
	}
	for _, r := range reviews {
		objects[Key(r)] = r
	}

	s.ident.replace(objects)
	return nil
}

// Close closes the database connection
func (s *DBStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
