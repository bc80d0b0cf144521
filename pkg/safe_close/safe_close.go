package safe_close

import (
	"sync"
)

// SafeClose 协调多个后台组件的优雅退出
// Components register via Attach; any of them (or the caller) can
// broadcast a close signal, and WaitClosed blocks until every attached
// component has called done.
// 组件通过 Attach 注册，任何组件都可以广播关闭信号，
// WaitClosed 会阻塞到所有已注册组件调用 done 为止。
type SafeClose struct {
	mu          sync.Mutex
	wg          sync.WaitGroup
	closeSignal chan struct{}
	closed      bool
	err         error
}

func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach 注册一个组件
// f 在新 goroutine 中运行，收到 closeSignal 后应完成清理并调用 done。
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	var once sync.Once
	done := func() {
		once.Do(s.wg.Done)
	}
	go f(done, s.closeSignal)
}

// SendCloseSignal 广播关闭信号，首个非 nil 错误会被记录
// 可以安全地多次调用。
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// CloseSignal 返回关闭信号通道
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}

// WaitClosed 阻塞到所有组件退出，返回触发关闭的错误
func (s *SafeClose) WaitClosed() error {
	<-s.closeSignal
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
