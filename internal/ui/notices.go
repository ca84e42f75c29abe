package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ubuntpunk/xenquotes/internal/notify"
)

const defaultNoticeDuration = 4 * time.Second

// NoticeQueue carries notices raised outside the update loop, such as from
// actions running in commands, to the status line. It implements
// notify.Notifier and never blocks: when full the oldest notice is dropped.
type NoticeQueue struct {
	ch chan notify.Notice
}

// NewNoticeQueue returns a queue holding up to size pending notices.
func NewNoticeQueue(size int) *NoticeQueue {
	if size < 1 {
		size = 1
	}
	return &NoticeQueue{ch: make(chan notify.Notice, size)}
}

// Notify implements notify.Notifier.
func (q *NoticeQueue) Notify(n notify.Notice) {
	for {
		select {
		case q.ch <- n:
			return
		default:
		}
		select {
		case <-q.ch:
		default:
		}
	}
}

// wait returns a command that delivers the next queued notice.
func (q *NoticeQueue) wait() tea.Cmd {
	if q == nil {
		return nil
	}
	return func() tea.Msg {
		return noticeMsg(<-q.ch)
	}
}

type noticeMsg notify.Notice

// clearNoticeMsg expires the notice with the given sequence number.
type clearNoticeMsg int

// showNotice puts n on the status line and schedules its removal.
func (m *Model) showNotice(n notify.Notice) tea.Cmd {
	m.noticeSeq++
	m.notice = &n
	seq := m.noticeSeq
	return tea.Tick(m.noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg(seq)
	})
}

func (m *Model) clearNotice(seq int) {
	// A newer notice owns the line until its own timer fires.
	if seq == m.noticeSeq {
		m.notice = nil
	}
}
