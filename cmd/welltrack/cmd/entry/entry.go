// cmd/welltrack/cmd/entry/entry.go
package entry

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"welltrack/internal/app/tracker"
	"welltrack/internal/domain/entry"
	"welltrack/internal/utils/timeparse"
)

var trackerName string

// Флаги фильтрации, общие для list и export.
var (
	searchText string
	fromText   string
	toText     string
	category   string
	todayOnly  bool
	lastDays   int
	sortBy     string
)

var EntryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Управление записями трекеров",
	Long: `Работа с записями дневников: добавление, просмотр, правка,
удаление, дублирование, экспорт и импорт старых текстовых журналов.

Вид трекера задаётся флагом --tracker:
- hrt        - дневник ГЗТ
- medication - журнал медикаментов
- journal    - личный дневник
- cycle      - трекер цикла
- resource   - подборка ресурсов`,
}

func init() {
	EntryCmd.PersistentFlags().StringVarP(&trackerName, "tracker", "k", "", "вид трекера (hrt|medication|journal|cycle|resource)")

	EntryCmd.AddCommand(addCmd)
	EntryCmd.AddCommand(listCmd)
	EntryCmd.AddCommand(editCmd)
	EntryCmd.AddCommand(deleteCmd)
	EntryCmd.AddCommand(duplicateCmd)
	EntryCmd.AddCommand(exportCmd)
	EntryCmd.AddCommand(importCmd)
}

func appFrom(cmd *cobra.Command) (*tracker.App, error) {
	app, ok := cmd.Context().Value("app").(*tracker.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

func sessionFrom(cmd *cobra.Command) (*tracker.App, *tracker.Session, error) {
	app, err := appFrom(cmd)
	if err != nil {
		return nil, nil, err
	}

	if trackerName == "" {
		return nil, nil, fmt.Errorf("не указан вид трекера (флаг --tracker)")
	}
	kind, err := entry.ParseKind(trackerName)
	if err != nil {
		return nil, nil, fmt.Errorf("неизвестный трекер %q, доступны: %s", trackerName, kindList())
	}

	s, err := app.Session(kind)
	if err != nil {
		return nil, nil, err
	}
	return app, s, nil
}

func kindList() string {
	names := make([]string, 0, len(entry.Kinds()))
	for _, k := range entry.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func jsonOutput(cmd *cobra.Command) bool {
	v, _ := cmd.Context().Value("json").(bool)
	return v
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&searchText, "search", "", "подстрочный поиск по всем полям")
	cmd.Flags().StringVar(&fromText, "from", "", "начало диапазона дат (включительно)")
	cmd.Flags().StringVar(&toText, "to", "", "конец диапазона дат (включительно)")
	cmd.Flags().StringVar(&category, "type", "", "точное совпадение по категории/типу")
	cmd.Flags().BoolVar(&todayOnly, "today", false, "только сегодняшние записи")
	cmd.Flags().IntVar(&lastDays, "last-days", 0, "записи за последние N дней")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "вторичный ключ сортировки при равном времени")
}

// buildFilter переносит флаги командной строки в фильтр выборки. Быстрые
// флаги --today и --last-days выставляются через сессию, чтобы границы
// считались от тех же часов, что и записи.
func buildFilter(app *tracker.App, s *tracker.Session) error {
	f := entry.Filter{Text: searchText, Category: category, SortField: sortBy}

	prefDate := app.Settings().DateFormat
	if fromText != "" {
		d, ok := timeparse.Date(fromText, prefDate)
		if !ok {
			return fmt.Errorf("не удалось разобрать дату %q", fromText)
		}
		f.From = d
	}
	if toText != "" {
		d, ok := timeparse.Date(toText, prefDate)
		if !ok {
			return fmt.Errorf("не удалось разобрать дату %q", toText)
		}
		f.To = d
	}

	s.SetFilter(f)
	if todayOnly {
		s.FilterToday()
	} else if lastDays > 0 {
		s.FilterLastDays(lastDays)
	}
	return nil
}

// parseFieldFlags разбирает повторяемый флаг --field key=value.
func parseFieldFlags(pairs []string) (map[string]string, error) {
	fields := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, found := strings.Cut(p, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("ожидается --field ключ=значение, получено %q", p)
		}
		fields[strings.TrimSpace(key)] = value
	}
	return fields, nil
}

// parseItemFlags разбирает повторяемый флаг --med название:доза:ед:путь:время.
// Хвостовые части можно опускать.
func parseItemFlags(values []string) []entry.Item {
	items := make([]entry.Item, 0, len(values))
	for _, v := range values {
		parts := strings.Split(v, ":")
		it := entry.Item{Name: strings.TrimSpace(parts[0])}
		if len(parts) > 1 {
			it.Dose = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			it.Unit = strings.TrimSpace(parts[2])
		}
		if len(parts) > 3 {
			it.Route = strings.TrimSpace(parts[3])
		}
		if len(parts) > 4 {
			it.Time = strings.TrimSpace(parts[4])
		}
		items = append(items, it)
	}
	return items
}

func printRecordsJSON(records []entry.Record) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func printRecordsTable(s *tracker.Session, records []entry.Record) {
	if len(records) == 0 {
		fmt.Println("Записи не найдены")
		return
	}

	schema := s.Schema()
	columns := schema.KnownFields()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := append([]string{"ID", "Время"}, columns...)
	fmt.Fprintln(w, strings.Join(header, "\t")+"\t")

	for _, r := range records {
		row := []string{shortID(r.ID), r.Timestamp}
		for _, c := range columns {
			row = append(row, truncate(r.Field(c), 40))
		}
		fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
	}
	w.Flush()

	fmt.Printf("\nВсего записей: %d\n", len(records))
}

func printRecordDetail(r entry.Record, schema entry.Schema) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Printf("%s\n", r.Timestamp)
	faint.Printf("ID: %s\n", r.ID)
	for _, f := range schema.KnownFields() {
		if v := r.Field(f); v != "" {
			fmt.Printf("  %s: %s\n", f, v)
		}
	}
	for _, it := range r.Items {
		line := it.Name
		if it.Dose != "" {
			line += " " + it.Dose + it.Unit
		}
		if it.Route != "" {
			line += " (" + it.Route + ")"
		}
		if it.Time != "" {
			line += " в " + it.Time
		}
		fmt.Printf("  - %s\n", line)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

// resolveID принимает как полный id, так и его короткий префикс из вывода list.
func resolveID(s *tracker.Session, arg string) (string, error) {
	if _, ok := s.Get(arg); ok {
		return arg, nil
	}

	match := ""
	for _, r := range s.ListWith(entry.Filter{}) {
		if strings.HasPrefix(r.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("префикс %q неоднозначен", arg)
			}
			match = r.ID
		}
	}
	if match == "" {
		return "", entry.ErrNotFound
	}
	return match, nil
}
