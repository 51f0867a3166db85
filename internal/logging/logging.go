package logging

//go:generate mockgen -source=logging.go -destination=../names/internal/mocks/logger_mock.go -package=mocks

// Logger абстракция предназначенная для логирования в строго определённых ситуациях
// при вводе имён. Реализация логирования делается программой.
type Logger interface {
	// InvalidCount введённое количество не является числом.
	InvalidCount(input string)
	// CountOutOfRange введено отрицательное количество.
	CountOutOfRange(count int)
	// NameAdded имя с данным порядковым номером добавлено в список.
	NameAdded(pos int, name string)
	// Done ввод завершён, в списке count имён.
	Done(count int)
}
