package orders

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Challenge — арифметическая проверка перед отправкой заказа.
// Два операнда из [1,20] и один из операторов +, -, ×.
type Challenge struct {
	A  int
	B  int
	Op string
}

var challengeOps = []string{"+", "-", "*"}

func NewChallenge() Challenge {
	return Challenge{
		A:  rand.IntN(20) + 1,
		B:  rand.IntN(20) + 1,
		Op: challengeOps[rand.IntN(len(challengeOps))],
	}
}

func (c Challenge) Answer() int {
	switch c.Op {
	case "-":
		return c.A - c.B
	case "*":
		return c.A * c.B
	default:
		return c.A + c.B
	}
}

// Question — текст задачи для формы.
func (c Challenge) Question() string {
	return fmt.Sprintf("Сколько будет %d %s %d?", c.A, c.Op, c.B)
}

// Verify сверяет ответ пользователя. Пустой или нечисловой ввод — неверно.
func (c Challenge) Verify(answer string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	return err == nil && n == c.Answer()
}
