//go:build js && wasm

package manager

import (
	"errors"
	"fmt"
	"strconv"
	"syscall/js"
)

var errNoLocalStorage = errors.New("localStorage unavailable")

// LocalStorage keeps the high score in the browser's window.localStorage.
type LocalStorage struct {
	storage js.Value
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{storage: js.Global().Get("localStorage")}
}

func (ls *LocalStorage) available() bool {
	return !ls.storage.IsUndefined() && !ls.storage.IsNull()
}

func (ls *LocalStorage) LoadHighScore() (int, error) {
	if !ls.available() {
		return 0, errNoLocalStorage
	}
	v := ls.storage.Call("getItem", HighScoreKey)
	if v.IsNull() || v.IsUndefined() {
		return 0, nil
	}
	score, err := strconv.Atoi(v.String())
	if err != nil || score < 0 {
		return 0, fmt.Errorf("corrupt %s value %q", HighScoreKey, v.String())
	}
	return score, nil
}

func (ls *LocalStorage) SaveHighScore(score int) error {
	if !ls.available() {
		return errNoLocalStorage
	}
	ls.storage.Call("setItem", HighScoreKey, strconv.Itoa(score))
	return nil
}
