package worker

import "sync"

// Task 是交給 pool 執行的工作單位。
type Task func()

// Pool 承接 best-effort 的背景工作，
// 例如暫存檔清理與預約事件發布。
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool 建立 n 個 worker 的 pool，n<=0 視為 1。
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
