package screenshot

import (
	"crypto/md5"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/webharness/webdriver-acceptance-tests/framework"
)

const writeQueueSize = 100

// Source is anything that can produce a PNG screenshot of the current browser
// window. selenium.WebDriver satisfies it.
type Source interface {
	Screenshot() ([]byte, error)
}

// Photographer captures screenshots from a Source and stores them under a target
// directory. File names include a digest of the image content plus a sequence
// number, so repeated captures of an unchanged page are still distinguishable.
type Photographer struct {
	source    Source
	targetDir string
	logger    framework.Logger
	queue     *WriteQueue
	counter   int
	lock      sync.Mutex
	done      sync.WaitGroup
}

func NewPhotographer(source Source, targetDir string, logger framework.Logger) *Photographer {
	if logger == nil {
		logger = framework.NullLogger()
	}
	p := &Photographer{
		source:    source,
		targetDir: targetDir,
		logger:    logger,
		queue:     NewWriteQueue(writeQueueSize),
	}
	p.done.Add(1)
	go p.writeLoop()
	return p
}

// TakeScreenshot captures a screenshot and schedules it for storage, returning the
// path the image will be written to. A capture failure is returned to the caller
// and logged, but must never make a failing test fail a second time, so callers
// generally treat the error as advisory.
func (p *Photographer) TakeScreenshot() (string, error) {
	data, err := p.source.Screenshot()
	if err != nil {
		p.logger.Printf("Failed to capture screenshot: %s", err)
		return "", errors.Wrap(err, "failed to capture screenshot")
	}

	p.lock.Lock()
	p.counter++
	counter := p.counter
	p.lock.Unlock()

	name := fmt.Sprintf("screenshot-%x-%d.png", md5.Sum(data), counter)
	path := filepath.Join(p.targetDir, name)
	p.queue.Accept(counter, Shot{Path: path, Data: data})
	return path, nil
}

// Close stops accepting screenshots and blocks until all scheduled images have been
// written.
func (p *Photographer) Close() {
	p.queue.Close()
	p.done.Wait()
}

func (p *Photographer) writeLoop() {
	defer p.done.Done()
	for shot := range p.queue.C {
		if err := p.store(shot); err != nil {
			p.logger.Printf("Failed to store screenshot %s: %s", shot.Path, err)
		}
	}
}

func (p *Photographer) store(shot Shot) error {
	if err := os.MkdirAll(filepath.Dir(shot.Path), 0755); err != nil {
		return errors.Wrap(err, "could not create screenshot directory")
	}
	return ioutil.WriteFile(shot.Path, shot.Data, 0644)
}
