// cmd/welltrack/cmd/entry/edit.go
package entry

import (
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"welltrack/internal/app/tracker"
	"welltrack/internal/domain/entry"
)

var (
	editDate   string
	editTime   string
	editFields []string
	editItems  []string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Изменить запись",
	Long: `Правка записи по id (подойдёт и короткий префикс из вывода list).

Незатронутые флагами поля сохраняют прежние значения; id записи
переживает правку. Флаг --med, если указан, заменяет весь список
препаратов целиком.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		id, err := resolveID(s, args[0])
		if err != nil {
			return err
		}
		current, _ := s.Get(id)

		overrides, err := parseFieldFlags(editFields)
		if err != nil {
			return err
		}

		in := tracker.FormInput{Fields: make(map[string]string, len(current.Fields))}
		for k, v := range current.Fields {
			in.Fields[k] = v
		}
		for k, v := range overrides {
			in.Fields[k] = v
		}

		// Прежний timestamp раскладывается обратно на дату и время, чтобы
		// не менять их без явного запроса.
		in.Date, in.Time, _ = strings.Cut(current.Timestamp, " ")
		if editDate != "" {
			in.Date = editDate
		}
		if editTime != "" {
			in.Time = editTime
		}

		in.Items = current.Items
		if cmd.Flags().Changed("med") {
			in.Items = parseItemFlags(editItems)
		}

		r, err := s.Update(id, in)
		if err != nil {
			return err
		}

		if jsonOutput(cmd) {
			return printRecordsJSON([]entry.Record{r})
		}
		color.Green("Запись обновлена: %s", shortID(r.ID))
		printRecordDetail(r, s.Schema())
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editDate, "date", "", "новая дата записи")
	editCmd.Flags().StringVar(&editTime, "time", "", "новое время записи")
	editCmd.Flags().StringArrayVar(&editFields, "field", nil, "поле записи в виде ключ=значение (можно повторять)")
	editCmd.Flags().StringArrayVar(&editItems, "med", nil, "полный новый список препаратов (можно повторять)")
}
