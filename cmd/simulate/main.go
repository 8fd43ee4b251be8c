// simulate 在无窗口环境中运行一局跑酷并输出生成统计
//
// 用法:
//
//	go run ./cmd/simulate -duration 120 -seed 42 -auto-boost
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/turborun/pkg/components"
	"github.com/decker502/turborun/pkg/config"
	"github.com/decker502/turborun/pkg/ecs"
	"github.com/decker502/turborun/pkg/session"
	"github.com/decker502/turborun/pkg/types"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "跑酷配置文件路径（默认使用内置默认值）")
	seed       = flag.Int64("seed", 1, "随机种子")
	duration   = flag.Float64("duration", 120, "模拟时长（秒）")
	fps        = flag.Int("fps", 60, "每秒 tick 数")
	autoBoost  = flag.Bool("auto-boost", false, "燃料满时自动加速")
	dodge      = flag.Bool("dodge", true, "在车道之间的安全带上行驶，避免撞上障碍物")
)

// summary 模拟结果统计
type summary struct {
	spawned   map[types.PoolCategory]int
	contacts  map[types.PoolCategory]int
	reclaimed int
	boosts    int
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}
	if *fps <= 0 || *duration <= 0 {
		fmt.Fprintln(os.Stderr, "duration and fps must be positive")
		os.Exit(2)
	}

	cfg := config.DefaultRunnerConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadRunnerConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
			os.Exit(1)
		}
	}

	sess, err := session.New(cfg, session.Options{Seed: *seed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建会话失败: %v\n", err)
		os.Exit(1)
	}

	s := run(sess, *duration, 1.0/float64(*fps))
	printSummary(sess, s)
}

func run(sess *session.Session, seconds, dt float64) summary {
	s := summary{
		spawned:  make(map[types.PoolCategory]int),
		contacts: make(map[types.PoolCategory]int),
	}

	timeline := sess.Timeline()
	lastInterval := timeline.CurrentInterval()

	// 默认起点位于两条障碍物车道之间
	if !*dodge {
		sess.SetInput(0, 1)
	}

	steps := int(seconds / dt)
	for i := 0; i < steps && !sess.State().IsGameOver(); i++ {
		if *autoBoost && sess.Boost().CanActivate() {
			sess.RequestBoost()
		}

		report := sess.Tick(dt)

		for _, id := range []ecs.EntityID{report.Spawn.Decoration, report.Spawn.Obstacle, report.Spawn.PowerUp} {
			if id == ecs.InvalidEntity {
				continue
			}
			if category, ok := categoryOf(sess, id); ok {
				s.spawned[category]++
			}
		}
		s.reclaimed += report.Spawn.Reclaimed
		for _, c := range report.Contacts {
			s.contacts[c.Category]++
		}

		for _, tier := range report.UnlockedTiers {
			fmt.Printf("[%7.2fs] %s obstacles unlocked, %d variants active\n", sess.Elapsed(), tier, len(timeline.ActiveVariants()))
		}
		if interval := timeline.CurrentInterval(); interval != lastInterval {
			fmt.Printf("[%7.2fs] obstacle interval %.2fs -> %.2fs\n", sess.Elapsed(), lastInterval, interval)
			lastInterval = interval
		}
		if report.BoostStarted {
			s.boosts++
			fmt.Printf("[%7.2fs] boost started\n", sess.Elapsed())
		}
		if report.BoostEnded {
			fmt.Printf("[%7.2fs] boost ended\n", sess.Elapsed())
		}
		if report.GameOver {
			fmt.Printf("[%7.2fs] game over\n", sess.Elapsed())
		}
	}
	return s
}

func categoryOf(sess *session.Session, id ecs.EntityID) (types.PoolCategory, bool) {
	member, ok := ecs.GetComponent[*components.PoolMemberComponent](sess.EntityManager(), id)
	if !ok {
		return 0, false
	}
	return member.Category, true
}

func printSummary(sess *session.Session, s summary) {
	stats := sess.Director().Stats()
	state := sess.State()

	fmt.Println()
	fmt.Printf("seed=%d elapsed=%.2fs\n", sess.Seed(), sess.Elapsed())
	fmt.Printf("score=%d health=%d/%d hits=%d boosts=%d\n", state.Score(), state.Health(), state.MaxHealth(), state.Hits(), s.boosts)
	for _, category := range types.AllCategories {
		fmt.Printf("%-10s spawned=%-5d contacts=%-5d free=%d\n", category, s.spawned[category], s.contacts[category], sess.Director().FreeLen(category))
	}
	fmt.Printf("pool: allocated=%d active=%d free=%d misses=%d acquires=%d releases=%d reclaimed=%d\n",
		stats.Allocated, stats.Active, stats.Free, stats.Misses, stats.Acquires, stats.Releases, s.reclaimed)
}
