// internal/app/loop.go
package app

import "time"

// FrameLoop — пара «запросить/отменить» для периодического кадра.
// Пока цикл отменён, C возвращает nil-канал, и ветка select с ним никогда не срабатывает.
type FrameLoop struct {
	interval time.Duration
	epoch    time.Time
	ticker   *time.Ticker
}

func NewFrameLoop(interval time.Duration) *FrameLoop {
	return &FrameLoop{
		interval: interval,
		epoch:    time.Now(),
	}
}

// Request запускает тики, повторный вызов ничего не делает
func (l *FrameLoop) Request() {
	if l.ticker != nil {
		return
	}
	l.ticker = time.NewTicker(l.interval)
}

// Cancel останавливает тики. Безопасно вызывать сколько угодно раз.
func (l *FrameLoop) Cancel() {
	if l.ticker == nil {
		return
	}
	l.ticker.Stop()
	l.ticker = nil
}

func (l *FrameLoop) Running() bool {
	return l.ticker != nil
}

func (l *FrameLoop) C() <-chan time.Time {
	if l.ticker == nil {
		return nil
	}
	return l.ticker.C
}

// Since переводит время тика в монотонную метку от создания цикла
func (l *FrameLoop) Since(t time.Time) time.Duration {
	return t.Sub(l.epoch)
}
