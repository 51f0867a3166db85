// Package names ввод списка имён с консоли и его вывод.
package names

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/sirkon/dllist/internal/dllist"
	"github.com/sirkon/dllist/internal/logging"
	"github.com/sirkon/errors"
)

const (
	countPrompt     = "Enter number of names to insert: "
	invalidCountMsg = "Invalid value, Try again\n"
	outOfRangeMsg   = "Value out of range\n"
	header          = "Names\n=============\n"
)

// Collector построчный диалог запроса имён.
type Collector struct {
	in  *bufio.Reader
	out io.Writer
	log logging.Logger
}

// NewCollector конструктор Collector.
func NewCollector(in io.Reader, out io.Writer, log logging.Logger) *Collector {
	return &Collector{
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// Collect запрашивает количество имён если count отрицательно, затем
// сами имена и возвращает их список в порядке ввода.
func (c *Collector) Collect(count int) (*dllist.DLList[string], error) {
	if count < 0 {
		var err error
		count, err = c.ReadCount()
		if err != nil {
			return nil, errors.Wrap(err, "read names count")
		}
	}

	res, err := c.ReadNames(count)
	if err != nil {
		return nil, errors.Wrap(err, "read names").Int("names-count", count)
	}

	c.log.Done(res.Len())
	return res, nil
}

// ReadCount запрашивает количество имён до тех пор пока не будет введено
// неотрицательное целое.
func (c *Collector) ReadCount() (int, error) {
	for {
		if err := c.write(countPrompt); err != nil {
			return 0, err
		}

		token, err := c.token()
		if err != nil {
			return 0, errors.Wrap(err, "read count token")
		}

		// Количество ограничено 32 битами, больше считается некорректным вводом.
		v, err := strconv.ParseInt(token, 10, 32)
		if err != nil {
			c.log.InvalidCount(token)
			if err := c.write(invalidCountMsg); err != nil {
				return 0, err
			}
			if err := c.skipLine(); err != nil {
				return 0, errors.Wrap(err, "skip the rest of invalid input")
			}
			continue
		}

		count := int(v)
		if count < 0 {
			c.log.CountOutOfRange(count)
			if err := c.write(outOfRangeMsg); err != nil {
				return 0, err
			}
			continue
		}

		return count, nil
	}
}

// ReadNames запрашивает count имён, каждое имя это одно слово.
func (c *Collector) ReadNames(count int) (*dllist.DLList[string], error) {
	res := dllist.New[string]()
	for i := 1; i <= count; i++ {
		if err := c.write(strconv.Itoa(i) + ": "); err != nil {
			return nil, err
		}

		name, err := c.token()
		if err != nil {
			return nil, errors.Wrap(err, "read name").Int("name-pos", i)
		}

		res.Push(name)
		c.log.NameAdded(i, name)
	}

	return res, nil
}

// Print вывод списка имён от первого к последнему.
func Print(out io.Writer, names *dllist.DLList[string]) error {
	var b strings.Builder
	b.WriteString(header)
	for n := names.First(); n != nil; n = n.Next() {
		b.WriteString(n.Value())
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(out, b.String()); err != nil {
		return errors.Wrap(err, "write names").Stg("list-id", names.ID())
	}

	return nil
}

func (c *Collector) write(s string) error {
	if _, err := fmt.Fprint(c.out, s); err != nil {
		return errors.Wrap(err, "write prompt").Str("prompt", s)
	}

	return nil
}

// token чтение очередного слова. Пробельный символ за словом остаётся непрочитанным.
// Возвращает io.EOF если до конца ввода слов больше нет.
func (c *Collector) token() (string, error) {
	var b strings.Builder
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if err == io.EOF && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}

		if unicode.IsSpace(r) {
			if b.Len() == 0 {
				continue
			}
			if err := c.in.UnreadRune(); err != nil {
				return "", errors.Wrap(err, "unread delimiter")
			}
			return b.String(), nil
		}

		b.WriteRune(r)
	}
}

// skipLine пропуск ввода до конца текущей строки включительно.
func (c *Collector) skipLine() error {
	if _, err := c.in.ReadString('\n'); err != nil && err != io.EOF {
		return err
	}

	return nil
}
