// Package safeclose 提供协调多个组件优雅关闭的工具
package safeclose

import (
	"sync"
)

// SafeClose coordinates shutdown across attached goroutines.
// Each attached func receives a done callback and a close signal channel;
// it must call done() when its cleanup is finished.
// SafeClose 协调多个已挂载协程的关闭流程。
// 每个挂载的函数会收到 done 回调与关闭信号通道，清理完成后必须调用 done()。
type SafeClose struct {
	mu        sync.Mutex
	wg        sync.WaitGroup
	closeCh   chan struct{}
	closeOnce sync.Once
	err       error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeCh: make(chan struct{}),
	}
}

// Attach 挂载一个受关闭信号控制的协程
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	done := func() { s.wg.Done() }
	go f(done, s.closeCh)
}

// SendCloseSignal 发出关闭信号，首个非 nil 错误会被记录
func (s *SafeClose) SendCloseSignal(err error) {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.closeCh)
	})
}

// CloseSignal 返回关闭信号通道
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeCh
}

// WaitClosed 等待所有挂载的协程完成关闭，返回触发关闭的错误
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
