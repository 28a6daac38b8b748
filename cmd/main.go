package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"lottery-master/internal/analyzer"
	"lottery-master/internal/cache"
	"lottery-master/internal/config"
	"lottery-master/internal/dataset"
	"lottery-master/internal/logger"
	"lottery-master/internal/lottery"
	"lottery-master/internal/scraper"
	"lottery-master/internal/stats"
)

// App 应用程序主结构
type App struct {
	config      *config.Config
	store       *dataset.Store
	scraper     *scraper.Scraper
	resultCache *cache.Cache
	analyzer    *analyzer.Analyzer

	stopChannel chan struct{}
	wg          sync.WaitGroup
}

// NewApp 创建应用程序实例
func NewApp(configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg.App.LogLevel)

	prefixes := make(map[lottery.Game]string, len(cfg.Scraper.Sources))
	for id, src := range cfg.Scraper.Sources {
		if src.FilePrefix != "" {
			prefixes[lottery.Game(id)] = src.FilePrefix
		}
	}

	store, err := dataset.NewStore(cfg.App.DataDir, prefixes)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dataset store: %v", err)
	}

	resultCache := cache.New(cfg.App.CacheTTL)

	app := &App{
		config:      cfg,
		store:       store,
		scraper:     scraper.New(&cfg.Scraper, store),
		resultCache: resultCache,
		stopChannel: make(chan struct{}),
	}

	// 没配置提供方时跳过分析编排，采集与统计照常工作
	if cfg.AI.APIKey != "" {
		app.analyzer, err = analyzer.New(&cfg.AI, resultCache, cfg.App.RecentDataCount)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize analyzer: %v", err)
		}
	} else {
		logger.Warn("AI provider not configured, analysis disabled")
	}

	logger.Info("Application initialized")
	return app, nil
}

// Start 启动应用程序
func (a *App) Start() {
	a.refreshAll()

	a.wg.Add(1)
	go a.refreshLoop()
}

// Stop 停止应用程序
func (a *App) Stop() {
	close(a.stopChannel)
	a.wg.Wait()
	logger.Info("Application stopped")
}

// refreshLoop 按轮询间隔刷新各玩法的数据集
func (a *App) refreshLoop() {
	defer a.wg.Done()

	ticker := time.NewTicker(a.config.App.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.refreshAll()
		case <-a.stopChannel:
			return
		}
	}
}

// refreshAll 依次采集所有配置的玩法并输出统计摘要
func (a *App) refreshAll() {
	ctx := context.Background()

	for id := range a.config.Scraper.Sources {
		game := lottery.Game(id)
		result := a.scraper.Scrape(ctx, game)
		if !result.Success {
			logger.Errorf("Scrape failed for %s: %s", game, result.Message)
			continue
		}
		logger.Infof("Scrape %s: %s (new=%t)", game, result.Message, result.IsNewFile)

		a.summarize(game, result.FileName)
		a.runAnalysis(ctx, game, result.FileName)
	}
}

// summarize 读取数据集并输出前区统计摘要
func (a *App) summarize(game lottery.Game, filename string) {
	records, err := a.store.Read(game, filename)
	if err != nil {
		logger.Warnf("Failed to read %s dataset: %v", game, err)
		return
	}

	key := fmt.Sprintf("stats:%s:%s:%d", filename, lottery.ZonePrimary, a.config.App.DefaultWindow)
	value, err := a.resultCache.GetOrCompute(key, func() (interface{}, error) {
		return stats.Analyze(records, game, lottery.ZonePrimary, a.config.App.DefaultWindow)
	})
	if err != nil {
		logger.Warnf("Failed to compute stats for %s: %v", game, err)
		return
	}

	if result, ok := value.(*stats.Result); ok {
		logger.Infof("Stats %s: %s", game, stats.Describe(result))
	}

	if chart, err := stats.Frequency(records, game, lottery.ZonePrimary, a.config.App.DefaultWindow); err == nil {
		logger.Debugf("%s: %d numbers charted", chart.Label, len(chart.Data))
	}
}

// runAnalysis 把最近记录交给外部分析提供方
func (a *App) runAnalysis(ctx context.Context, game lottery.Game, filename string) {
	if a.analyzer == nil {
		return
	}

	records, err := a.store.Read(game, filename)
	if err != nil || len(records) == 0 {
		return
	}

	result, err := a.analyzer.Analyze(ctx, game, records, "analysis:"+filename)
	if err != nil {
		logger.Errorf("Analysis failed for %s: %v", game, err)
		return
	}
	logger.Infof("Analysis %s completed via %s (%s)", game, result.Provider, result.Model)
}

func main() {
	configPath := "configs/config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	app, err := NewApp(configPath)
	if err != nil {
		fmt.Printf("Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	app.Start()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	app.Stop()
}
