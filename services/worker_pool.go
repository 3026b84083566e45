/*
 * @Date: 2025-06-18 09:14:27
 * @Description: 工作池 - 限制查询扇出的总并发量
 */
package services

import (
	"sync"
)

// WorkerPool 固定大小的工作池
// DNS各记录类型和综合查询的并行分支都通过它执行，避免单次请求无界开协程
type WorkerPool struct {
	tasks   chan func()
	wg      sync.WaitGroup
	workers int

	mu      sync.RWMutex
	stopped bool
}

// NewWorkerPool 创建指定工作者数量的工作池
func NewWorkerPool(workers int) *WorkerPool {
	return &WorkerPool{
		tasks:   make(chan func(), workers*2),
		workers: workers,
	}
}

// Start 启动工作池
func (p *WorkerPool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
}

// Submit 提交任务，队列已满或工作池已停止返回false
func (p *WorkerPool) Submit(task func()) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return false
	}
	select {
	case p.tasks <- task:
		return true
	default:
		return false
	}
}

// Run 提交任务执行；队列满或工作池已停止时在当前goroutine内联执行，
// 保证任务总会运行
func (p *WorkerPool) Run(task func()) {
	if !p.Submit(task) {
		task()
	}
}

// Stop 停止工作池并等待在途任务完成，可安全重复调用
// 停止后Submit拒绝新任务而不是向已关闭通道发送
func (p *WorkerPool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}
