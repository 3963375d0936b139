package app

import (
	"context"
	"fmt"
	"io"
	"sort"

	"pinkguard_bot/internal/domain/slot"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

type slotKey struct {
	owner int64
	key   string
}

type memorySlots struct {
	values map[slotKey]string
	putErr error
	puts   int
}

func newMemorySlots() *memorySlots {
	return &memorySlots{values: make(map[slotKey]string)}
}

func (m *memorySlots) Get(_ context.Context, ownerID int64, key string) (string, error) {
	v, ok := m.values[slotKey{ownerID, key}]
	if !ok {
		return "", slot.ErrSlotNotFound
	}
	return v, nil
}

func (m *memorySlots) Put(_ context.Context, ownerID int64, key, value string) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.puts++
	m.values[slotKey{ownerID, key}] = value
	return nil
}

func (m *memorySlots) Delete(_ context.Context, ownerID int64, key string) error {
	delete(m.values, slotKey{ownerID, key})
	return nil
}

func (m *memorySlots) ListOwners(_ context.Context, key string) ([]int64, error) {
	var owners []int64
	for k := range m.values {
		if k.key == key {
			owners = append(owners, k.owner)
		}
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })
	return owners, nil
}

type recordingPresenter struct {
	views   []TrackerView
	cleared int
}

func (p *recordingPresenter) Render(_ context.Context, view TrackerView) error {
	p.views = append(p.views, view)
	return nil
}

func (p *recordingPresenter) ClearInput(context.Context) error {
	p.cleared++
	return nil
}

func (p *recordingPresenter) last() TrackerView {
	return p.views[len(p.views)-1]
}

type sentMessage struct {
	chatID int64
	text   string
}

type fakeTelegramClient struct {
	sent    []sentMessage
	failFor map[int64]bool
}

func (c *fakeTelegramClient) SendMessage(chatID int64, text string, _ *telebot.SendOptions) error {
	if c.failFor[chatID] {
		return fmt.Errorf("chat %d blocked the bot", chatID)
	}
	c.sent = append(c.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
