package skinvault

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ptrs/skinvault/date"
	"github.com/shopspring/decimal"
)

// History file names inside the recorder directory. Their column layout is a
// compatibility contract: downstream readers of the historical data break if
// it changes. Legacy layouts are handled by the migrate tool only.
const (
	valuesFile   = "values.csv"   // date,value_<cur>
	accountsFile = "accounts.csv" // date,steam_id,value_<cur>
)

// AccountValue is one account's total value for one date. Appended once per
// run per account, immutable once written.
type AccountValue struct {
	AccountID string
	Value     decimal.Decimal
}

// Recorder appends valuation rows to the durable flat-file history. Files are
// created with their header row on first write; rows are only ever appended.
// Two runs on the same day append two rows, they are not merged.
type Recorder struct {
	dir      string
	currency string
}

// NewRecorder creates a recorder writing to the given directory for the given
// currency code.
func NewRecorder(dir, currency string) *Recorder {
	return &Recorder{dir: dir, currency: currency}
}

func (r *Recorder) valuesPath() string   { return filepath.Join(r.dir, valuesFile) }
func (r *Recorder) accountsPath() string { return filepath.Join(r.dir, accountsFile) }

// valueColumn is the currency-qualified header of the value column.
func (r *Recorder) valueColumn() string { return "value_" + strings.ToLower(r.currency) }

// Record appends one global row and one row per account for the given date.
func (r *Recorder) Record(on date.Date, accounts []AccountValue, total decimal.Decimal) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("cannot create history directory %q: %w", r.dir, err)
	}

	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{on.String(), a.AccountID, a.Value.StringFixed(2)})
	}
	header := []string{"date", "steam_id", r.valueColumn()}
	if err := appendRows(r.accountsPath(), header, rows); err != nil {
		return err
	}

	header = []string{"date", r.valueColumn()}
	return appendRows(r.valuesPath(), header, [][]string{{on.String(), total.StringFixed(2)}})
}

// appendRows appends CSV rows to a file, writing the header first when the
// file does not exist yet or is empty.
func appendRows(path string, header []string, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open history file %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("cannot stat history file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			return fmt.Errorf("cannot write header to %q: %w", path, err)
		}
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("cannot write row to %q: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}

// LoadValues reads the global history back into a chronological series. When
// a day has several recorded rows the last one wins.
func (r *Recorder) LoadValues() (*date.History[float64], error) {
	records, err := readCSV(r.valuesPath())
	if err != nil {
		return nil, err
	}
	h := &date.History[float64]{}
	if len(records) == 0 {
		return h, nil
	}
	if len(records[0]) != 2 {
		return nil, fmt.Errorf("history file %q has %d columns, want 2: legacy layout, run the migrate tool", r.valuesPath(), len(records[0]))
	}
	for i, rec := range records[1:] {
		on, err := date.Parse(rec[0])
		if err != nil {
			return nil, fmt.Errorf("history file %q row %d: %w", r.valuesPath(), i+2, err)
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("history file %q row %d: invalid value %q: %w", r.valuesPath(), i+2, rec[1], err)
		}
		h.Append(on, v)
	}
	return h, nil
}

// LoadAccounts reads the per-account history back, one series per account id.
func (r *Recorder) LoadAccounts() (map[string]*date.History[float64], error) {
	records, err := readCSV(r.accountsPath())
	if err != nil {
		return nil, err
	}
	series := make(map[string]*date.History[float64])
	if len(records) == 0 {
		return series, nil
	}
	if len(records[0]) != 3 {
		return nil, fmt.Errorf("history file %q has %d columns, want 3: legacy layout, run the migrate tool", r.accountsPath(), len(records[0]))
	}
	for i, rec := range records[1:] {
		on, err := date.Parse(rec[0])
		if err != nil {
			return nil, fmt.Errorf("history file %q row %d: %w", r.accountsPath(), i+2, err)
		}
		v, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("history file %q row %d: invalid value %q: %w", r.accountsPath(), i+2, rec[2], err)
		}
		h := series[rec[1]]
		if h == nil {
			h = &date.History[float64]{}
			series[rec[1]] = h
		}
		h.Append(on, v)
	}
	return series, nil
}

// readCSV reads a whole CSV file, returning no records when the file does not
// exist yet.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open history file %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read history file %q: %w", path, err)
	}
	return records, nil
}
