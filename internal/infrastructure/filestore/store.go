// Package filestore implementa los repositorios de lectura sobre un archivo de datos YAML o JSON.
// Lo usa la CLI para generar libros y estados sin base de datos.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jhoicas/contasunat/internal/application/reporting"
	"github.com/jhoicas/contasunat/internal/domain/entity"
	"github.com/jhoicas/contasunat/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// Dataset contenido del archivo. Las claves siguen los tags json de las entidades.
type Dataset struct {
	Company   entity.Company            `json:"company"`
	Accounts  []entity.Account          `json:"accounts"`
	Movements []entity.LedgerMovement   `json:"movements"`
	Journal   []entity.JournalEntry     `json:"journal"`
	Purchases []entity.PurchaseDocument `json:"purchases"`
	Sales     []entity.SalesDocument    `json:"sales"`
	Treasury  []entity.TreasuryMovement `json:"treasury"`
}

// Store dataset en memoria, inmutable tras la carga.
type Store struct {
	data Dataset
}

var (
	_ repository.CompanyRepository  = (*Store)(nil)
	_ repository.LedgerRepository   = (*Store)(nil)
	_ repository.JournalRepository  = (*Store)(nil)
	_ repository.RegisterRepository = (*Store)(nil)
	_ reporting.SnapshotRunner      = (*Store)(nil)
)

// New envuelve un dataset ya construido.
func New(data Dataset) *Store {
	return &Store{data: data}
}

// Load lee el archivo. JSON es YAML válido, así que ambos formatos pasan por el mismo parser.
// Los códigos y números de documento deben ir entre comillas en YAML.
func Load(path string) (*Store, error) {
	var data Dataset
	if err := ReadFile(path, &data); err != nil {
		return nil, err
	}
	return New(data), nil
}

// Parse decodifica el contenido de un archivo de datos.
func Parse(raw []byte) (*Store, error) {
	var data Dataset
	if err := Decode(raw, &data); err != nil {
		return nil, err
	}
	return New(data), nil
}

// ReadFile decodifica un archivo YAML o JSON en v según sus tags json.
func ReadFile(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("filestore: leer %s: %w", path, err)
	}
	return Decode(raw, v)
}

// Decode YAML (o JSON) en v. Las entidades solo declaran tags json: el árbol YAML se normaliza a JSON.
func Decode(raw []byte, v any) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("filestore: yaml: %w", err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("filestore: normalizar: %w", err)
	}
	if err := json.Unmarshal(js, v); err != nil {
		return fmt.Errorf("filestore: decodificar: %w", err)
	}
	return nil
}

// Company empresa del archivo.
func (s *Store) Company() entity.Company {
	return s.data.Company
}

// ReadSnapshot el archivo ya es una foto consistente.
func (s *Store) ReadSnapshot(_ context.Context, fn func(repos reporting.Repositories) error) error {
	return fn(reporting.Repositories{
		Companies: s,
		Ledger:    s,
		Journal:   s,
		Registers: s,
		Treasury:  treasury{s},
	})
}

// GetByRUC (nil, nil) si el RUC no es el de la empresa del archivo.
func (s *Store) GetByRUC(_ context.Context, ruc string) (*entity.Company, error) {
	if s.data.Company.RUC != ruc {
		return nil, nil
	}
	c := s.data.Company
	return &c, nil
}

func (s *Store) ListAccounts(context.Context, string) ([]entity.Account, error) {
	return s.data.Accounts, nil
}

// ListMovements movimientos con fecha en [from, to].
func (s *Store) ListMovements(_ context.Context, _ string, from, to time.Time) ([]entity.LedgerMovement, error) {
	var out []entity.LedgerMovement
	for _, m := range s.data.Movements {
		ok, err := inRange(m.Date, from, to)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}

// ListByPeriod líneas de asiento con fecha contable en el periodo AAAAMM.
func (s *Store) ListByPeriod(_ context.Context, _ string, period string) ([]entity.JournalEntry, error) {
	var out []entity.JournalEntry
	for _, e := range s.data.Journal {
		if inPeriod(e.Date, period) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) ListPurchases(_ context.Context, _ string, period string) ([]entity.PurchaseDocument, error) {
	var out []entity.PurchaseDocument
	for _, d := range s.data.Purchases {
		if inPeriod(d.IssueDate, period) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) ListSales(_ context.Context, _ string, period string) ([]entity.SalesDocument, error) {
	var out []entity.SalesDocument
	for _, d := range s.data.Sales {
		if inPeriod(d.IssueDate, period) {
			out = append(out, d)
		}
	}
	return out, nil
}

// treasury separa ListMovements de tesorería del de libro mayor.
type treasury struct{ s *Store }

var _ repository.TreasuryRepository = treasury{}

func (t treasury) ListMovements(_ context.Context, _ string, from, to time.Time) ([]entity.TreasuryMovement, error) {
	var out []entity.TreasuryMovement
	for _, m := range t.s.data.Treasury {
		ok, err := inRange(m.Date, from, to)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func inRange(date string, from, to time.Time) (bool, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false, fmt.Errorf("filestore: fecha %q: %w", date, err)
	}
	return !d.Before(from) && !d.After(to), nil
}

// inPeriod compara AAAA-MM de la fecha con AAAAMM.
func inPeriod(date, period string) bool {
	if len(date) < 7 || len(period) != 6 {
		return false
	}
	return strings.ReplaceAll(date[:7], "-", "") == period
}
