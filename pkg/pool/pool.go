package pool

import (
	"fmt"
	"sort"
	"sync"

	proto "github.com/Nayrode/sealci/api/proto"
	"github.com/Nayrode/sealci/pkg/log"
	"github.com/rs/zerolog"
)

// memoryScoreScale brings memory (bytes) to the same order of magnitude as
// the CPU share when scoring health updates.
const memoryScoreScale = 100_000_000

// Agent is one registered worker in the pool. Lower score means freer.
type Agent struct {
	ID    uint32
	Host  string
	Port  uint32
	Score uint64
}

// Addr returns the agent's dial target in host:port form.
func (a Agent) Addr() (string, error) {
	if a.Host == "" {
		return "", fmt.Errorf("agent %d has an empty hostname", a.ID)
	}
	return fmt.Sprintf("%s:%d", a.Host, a.Port), nil
}

// Score computes the freeness score of an agent from a health sample.
func Score(cpuAvail uint32, memoryAvail uint64) uint64 {
	return uint64(0.5*float64(cpuAvail) + 0.5*float64(memoryAvail))
}

// Pool is the scheduler's ordered collection of registered agents, sorted
// ascending by (score, id). A single mutex guards it; no I/O happens while
// the lock is held. Agents are never removed in steady state — they linger
// until the scheduler restarts and re-register on reconnect.
type Pool struct {
	mu     sync.Mutex
	agents []*Agent
	logger zerolog.Logger
}

// New creates an empty agent pool.
func New() *Pool {
	return &Pool{
		logger: log.WithComponent("pool"),
	}
}

// Register inserts a new agent and returns its assigned id. Ids are
// max(existing)+1 starting at 1, so they are unique among the agents in the
// pool. An id removed by PopBest is assigned again if it was the highest.
func (p *Pool) Register(host string, port uint32, health *proto.Health) uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID()
	p.agents = append(p.agents, &Agent{
		ID:    id,
		Host:  host,
		Port:  port,
		Score: Score(health.GetCpuAvail(), health.GetMemoryAvail()),
	})
	p.sort()

	return id
}

// UpdateHealth recomputes the score of the agent with the given id and
// re-sorts the pool only when the agent fell out of order relative to its
// neighbors. An unknown id is logged and ignored; the agent will re-register
// on its next reconnect.
func (p *Pool) UpdateHealth(id uint32, health *proto.Health) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.indexOf(id)
	if idx < 0 {
		p.logger.Error().Uint32("agent_id", id).Msg("Agent not found in pool, skipping health sample")
		return false
	}

	p.agents[idx].Score = Score(health.GetCpuAvail(), health.GetMemoryAvail()/memoryScoreScale)

	if p.outOfOrder(idx) {
		p.sort()
	}
	return true
}

// PeekBest returns a copy of the least-loaded agent without removing it.
func (p *Pool) PeekBest() (Agent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.agents) == 0 {
		return Agent{}, false
	}
	return *p.agents[0], true
}

// PopBest removes and returns the least-loaded agent. Unused in steady
// state; reserved for drain.
func (p *Pool) PopBest() (Agent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.agents) == 0 {
		return Agent{}, false
	}
	best := *p.agents[0]
	p.agents = p.agents[1:]
	return best, true
}

// Len returns the number of registered agents.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.agents)
}

// sort orders the pool ascending by score, tie-broken on id so the order is
// total and equal-score agents keep a stable dispatch rotation.
func (p *Pool) sort() {
	sort.SliceStable(p.agents, func(i, j int) bool {
		if p.agents[i].Score != p.agents[j].Score {
			return p.agents[i].Score < p.agents[j].Score
		}
		return p.agents[i].ID < p.agents[j].ID
	})
}

func (p *Pool) indexOf(id uint32) int {
	for i, agent := range p.agents {
		if agent.ID == id {
			return i
		}
	}
	return -1
}

// outOfOrder reports whether the agent at idx violates the sort order with
// respect to either immediate neighbor.
func (p *Pool) outOfOrder(idx int) bool {
	before := func(a, b *Agent) bool {
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		return a.ID < b.ID
	}
	if idx > 0 && before(p.agents[idx], p.agents[idx-1]) {
		return true
	}
	if idx < len(p.agents)-1 && before(p.agents[idx+1], p.agents[idx]) {
		return true
	}
	return false
}

func (p *Pool) nextID() uint32 {
	var max uint32
	for _, agent := range p.agents {
		if agent.ID > max {
			max = agent.ID
		}
	}
	return max + 1
}
