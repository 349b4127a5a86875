// cmd/welltrack/cmd/entry/add.go
package entry

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"welltrack/internal/app/tracker"
	"welltrack/internal/domain/entry"
)

var (
	addDate   string
	addTime   string
	addFields []string
	addItems  []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить запись",
	Long: `Добавление записи в выбранный трекер.

Поля задаются повторяемым флагом --field ключ=значение, вложенные
препараты (для трекеров со списком) - флагом --med название:доза:ед:путь:время.
Пустые дата и время подставляются текущими.

Примеры:
  welltrack entry add -k medication --field name=Estradiol --field dose=2mg
  welltrack entry add -k hrt --med "Estradiol:2:mg:oral" --med "Progesterone:100:mg"
  welltrack entry add -k journal --date 2025-01-05 --field content="трудный день"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, s, err := sessionFrom(cmd)
		if err != nil {
			return err
		}

		fields, err := parseFieldFlags(addFields)
		if err != nil {
			return err
		}

		r, err := s.BuildRecord(tracker.FormInput{
			Date:   addDate,
			Time:   addTime,
			Fields: fields,
			Items:  parseItemFlags(addItems),
		})
		if err != nil {
			return err
		}
		if _, err := s.Add(r); err != nil {
			return err
		}

		if jsonOutput(cmd) {
			return printRecordsJSON([]entry.Record{r})
		}
		color.Green("Запись добавлена: %s", shortID(r.ID))
		printRecordDetail(r, s.Schema())
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "дата записи (по умолчанию сегодня)")
	addCmd.Flags().StringVar(&addTime, "time", "", "время записи (по умолчанию сейчас)")
	addCmd.Flags().StringArrayVar(&addFields, "field", nil, "поле записи в виде ключ=значение (можно повторять)")
	addCmd.Flags().StringArrayVar(&addItems, "med", nil, "препарат в виде название:доза:ед:путь:время (можно повторять)")
}
