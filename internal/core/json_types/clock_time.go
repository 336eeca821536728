package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime — время дня без даты, в JSON хранится строкой "HH:MM".
type ClockTime struct {
	Hour   int
	Minute int
}

func (t *ClockTime) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])
	parsedTime, err := time.Parse("15:04", str)
	if err != nil {
		return fmt.Errorf("failed to parse time: %v", err)
	}
	*t = ClockTime{Hour: parsedTime.Hour(), Minute: parsedTime.Minute()}
	return nil
}

func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
