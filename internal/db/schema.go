package db

import (
	"context"
	"fmt"

	"globetrotter/internal/utils"

	"github.com/jmoiron/sqlx"
)

// Tables in dependency order. Trip children cascade on delete; cities are
// protected by RESTRICT while any stop references them.
var schema = []struct {
	Table string
	DDL   string
}{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
  id BIGINT NOT NULL AUTO_INCREMENT,
  email VARCHAR(255) NOT NULL,
  username VARCHAR(64) NOT NULL,
  hashed_password VARCHAR(255) NOT NULL,
  first_name VARCHAR(255) NULL,
  last_name VARCHAR(255) NULL,
  phone VARCHAR(64) NULL,
  city VARCHAR(255) NULL,
  country VARCHAR(255) NULL,
  additional_info TEXT NULL,
  is_active TINYINT(1) NOT NULL DEFAULT 1,
  created_at DATETIME(6) NOT NULL,
  updated_at DATETIME(6) NOT NULL,
  PRIMARY KEY (id),
  UNIQUE KEY uq_users_email (email),
  UNIQUE KEY uq_users_username (username)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"trips", `
CREATE TABLE IF NOT EXISTS trips (
  id BIGINT NOT NULL AUTO_INCREMENT,
  user_id BIGINT NOT NULL,
  name VARCHAR(255) NOT NULL,
  description TEXT NULL,
  start_date DATETIME(6) NOT NULL,
  end_date DATETIME(6) NOT NULL,
  status VARCHAR(16) NOT NULL DEFAULT 'upcoming',
  cover_image VARCHAR(1024) NULL,
  is_public TINYINT(1) NOT NULL DEFAULT 0,
  created_at DATETIME(6) NOT NULL,
  updated_at DATETIME(6) NOT NULL,
  PRIMARY KEY (id),
  KEY idx_trips_user (user_id),
  CONSTRAINT fk_trips_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"cities", `
CREATE TABLE IF NOT EXISTS cities (
  id BIGINT NOT NULL AUTO_INCREMENT,
  name VARCHAR(255) NOT NULL,
  country VARCHAR(255) NOT NULL,
  region VARCHAR(255) NULL,
  cost_index VARCHAR(4) NULL,
  popularity VARCHAR(16) NULL,
  description TEXT NULL,
  image_url VARCHAR(1024) NULL,
  latitude DOUBLE NULL,
  longitude DOUBLE NULL,
  created_at DATETIME(6) NOT NULL,
  updated_at DATETIME(6) NOT NULL,
  PRIMARY KEY (id),
  KEY idx_cities_region (region)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"stops", `
CREATE TABLE IF NOT EXISTS stops (
  id BIGINT NOT NULL AUTO_INCREMENT,
  trip_id BIGINT NOT NULL,
  city_id BIGINT NOT NULL,
  order_index INT NOT NULL,
  start_date DATETIME(6) NOT NULL,
  end_date DATETIME(6) NOT NULL,
  notes TEXT NULL,
  created_at DATETIME(6) NOT NULL,
  updated_at DATETIME(6) NOT NULL,
  PRIMARY KEY (id),
  UNIQUE KEY uq_stops_trip_order (trip_id, order_index),
  KEY idx_stops_city (city_id),
  CONSTRAINT fk_stops_trip FOREIGN KEY (trip_id) REFERENCES trips (id) ON DELETE CASCADE,
  CONSTRAINT fk_stops_city FOREIGN KEY (city_id) REFERENCES cities (id) ON DELETE RESTRICT
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"activities", `
CREATE TABLE IF NOT EXISTS activities (
  id BIGINT NOT NULL AUTO_INCREMENT,
  stop_id BIGINT NOT NULL,
  name VARCHAR(255) NOT NULL,
  category VARCHAR(64) NULL,
  description TEXT NULL,
  duration VARCHAR(64) NULL,
  cost VARCHAR(4) NULL,
  rating DOUBLE NULL,
  scheduled_time DATETIME(6) NULL,
  notes TEXT NULL,
  image_url VARCHAR(1024) NULL,
  created_at DATETIME(6) NOT NULL,
  updated_at DATETIME(6) NOT NULL,
  PRIMARY KEY (id),
  KEY idx_activities_stop (stop_id),
  CONSTRAINT fk_activities_stop FOREIGN KEY (stop_id) REFERENCES stops (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"budgets", `
CREATE TABLE IF NOT EXISTS budgets (
  id BIGINT NOT NULL AUTO_INCREMENT,
  trip_id BIGINT NOT NULL,
  total_budget DOUBLE NOT NULL DEFAULT 0,
  transport_cost DOUBLE NOT NULL DEFAULT 0,
  accommodation_cost DOUBLE NOT NULL DEFAULT 0,
  food_cost DOUBLE NOT NULL DEFAULT 0,
  activities_cost DOUBLE NOT NULL DEFAULT 0,
  other_cost DOUBLE NOT NULL DEFAULT 0,
  currency CHAR(3) NOT NULL DEFAULT 'USD',
  notes TEXT NULL,
  created_at DATETIME(6) NOT NULL,
  updated_at DATETIME(6) NOT NULL,
  PRIMARY KEY (id),
  UNIQUE KEY uq_budgets_trip (trip_id),
  CONSTRAINT fk_budgets_trip FOREIGN KEY (trip_id) REFERENCES trips (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"expenses", `
CREATE TABLE IF NOT EXISTS expenses (
  id BIGINT NOT NULL AUTO_INCREMENT,
  budget_id BIGINT NOT NULL,
  category VARCHAR(32) NOT NULL,
  amount DOUBLE NOT NULL DEFAULT 0,
  description TEXT NULL,
  expense_date DATETIME(6) NOT NULL,
  created_at DATETIME(6) NOT NULL,
  updated_at DATETIME(6) NOT NULL,
  PRIMARY KEY (id),
  KEY idx_expenses_budget_category (budget_id, category),
  CONSTRAINT fk_expenses_budget FOREIGN KEY (budget_id) REFERENCES budgets (id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// Tables lists the managed table names in creation order.
func Tables() []string {
	out := make([]string, 0, len(schema))
	for _, s := range schema {
		out = append(out, s.Table)
	}
	return out
}

// Migrate creates missing tables. Existing tables are left untouched.
func Migrate(ctx context.Context, db *sqlx.DB) (created []string, err error) {
	for _, s := range schema {
		if HasTable(ctx, db, s.Table) {
			continue
		}
		if _, err := db.ExecContext(ctx, s.DDL); err != nil {
			return created, fmt.Errorf("create table %s: %w", s.Table, err)
		}
		utils.LogEvent("", "migrate", "create_table", s.Table)
		created = append(created, s.Table)
	}
	return created, nil
}
