// Package scraper 负责幂等地落地每个玩法当天的数据集：
// 拉取远端页面、逐行提取有效记录、写盘并淘汰旧文件。
// 所有失败都折算成结果值返回，绝不向调用方抛错。
package scraper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"

	"lottery-master/internal/config"
	"lottery-master/internal/dataset"
	"lottery-master/internal/extractor"
	"lottery-master/internal/logger"
	"lottery-master/internal/lottery"
)

// 双色球/大乐透来源表格的开奖行选择器
const drawRowSelector = "tr.t_tr1"

// 福彩3D来源不用列标签，开奖号单元格带展示用的球样式标记
const fc3dMarkerClass = "chartBall"

// Result 一次采集的结果值
type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	FileName  string `json:"fileName,omitempty"`
	IsNewFile bool   `json:"isNewFile"`
}

// Scraper 数据采集器
type Scraper struct {
	client  *resty.Client
	store   *dataset.Store
	sources map[lottery.Game]config.Source
	limit   int

	// 测试注入时钟，采集日以此为准
	now func() time.Time
}

// New 创建采集器
func New(cfg *config.Scraper, store *dataset.Store) *Scraper {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount)

	sources := make(map[lottery.Game]config.Source, len(cfg.Sources))
	for id, src := range cfg.Sources {
		sources[lottery.Game(id)] = src
	}

	return &Scraper{
		client:  client,
		store:   store,
		sources: sources,
		limit:   cfg.HistoryLimit,
		now:     time.Now,
	}
}

// Scrape 采集一个玩法当天的数据集。
// 同一天重复调用除淘汰旧文件外是空操作。
func (s *Scraper) Scrape(ctx context.Context, game lottery.Game) Result {
	profile, err := lottery.ProfileFor(game)
	if err != nil {
		return failure(fmt.Sprintf("unknown game: %s", game))
	}

	src, ok := s.sources[game]
	if !ok || src.URL == "" {
		return failure(fmt.Sprintf("no source configured for game: %s", game))
	}

	today := dataset.Today(s.now())
	filename := s.store.FileName(game, today)

	if err := s.store.EvictStale(game, today); err != nil {
		logger.Warnf("Stale file eviction failed for %s: %v", game, err)
	}

	if s.store.Exists(filename) {
		return Result{
			Success:  true,
			Message:  fmt.Sprintf("%s data file for %s already exists", game, today),
			FileName: filename,
		}
	}

	logger.Infof("Fetching %s data from %s", game, src.URL)
	body, errMsg := s.fetch(ctx, src)
	if errMsg != "" {
		return failure(errMsg)
	}

	records, err := s.parse(body, src, profile)
	if err != nil {
		return failure(fmt.Sprintf("failed to parse %s document: %v", game, err))
	}
	if len(records) == 0 {
		// 非空页面提取不出任何有效行说明解析已经系统性失效，
		// 必须当失败暴露，不能伪装成「今天没有开奖」
		return failure(fmt.Sprintf("no valid draw rows extracted from %s source", game))
	}

	if err := s.store.Write(game, filename, records); err != nil {
		return failure(fmt.Sprintf("failed to write %s dataset: %v", game, err))
	}

	logger.Infof("Saved %d %s records to %s", len(records), game, filename)
	return Result{
		Success:   true,
		Message:   fmt.Sprintf("Successfully created new %s data file for %s", game, today),
		FileName:  filename,
		IsNewFile: true,
	}
}

// fetch 拉取来源页面，失败时返回人类可读的错误消息
func (s *Scraper) fetch(ctx context.Context, src config.Source) ([]byte, string) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(s.limit)).
		Get(src.URL)
	if err != nil {
		return nil, fmt.Sprintf("failed to fetch source: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Sprintf("source returned HTTP %d", resp.StatusCode())
	}
	body := resp.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, "no data received from source"
	}
	return body, ""
}

// parse 解析页面并逐行提取记录，坏行静默丢弃
func (s *Scraper) parse(body []byte, src config.Source, profile lottery.Profile) ([]lottery.DrawRecord, error) {
	var reader io.Reader = bytes.NewReader(body)
	if src.GBK {
		reader = transform.NewReader(reader, simplifiedchinese.GBK.NewDecoder())
	}

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, err
	}

	var records []lottery.DrawRecord
	rows := s.selectRows(doc, profile)
	rows.Each(func(_ int, tr *goquery.Selection) {
		row := buildRow(tr)
		rec, ok := extractor.FromSource(row, profile)
		if !ok {
			return
		}
		records = append(records, rec)
	})
	return records, nil
}

func (s *Scraper) selectRows(doc *goquery.Document, profile lottery.Profile) *goquery.Selection {
	if profile.Positional {
		return doc.Find("tr")
	}
	return doc.Find(drawRowSelector)
}

// buildRow 把一个<tr>转成提取器输入：单元格文本与标记位
func buildRow(tr *goquery.Selection) extractor.Row {
	var row extractor.Row
	tr.Find("td").Each(func(_ int, td *goquery.Selection) {
		row.Cells = append(row.Cells, td.Text())
		class, _ := td.Attr("class")
		row.Marked = append(row.Marked, strings.Contains(class, fc3dMarkerClass))
	})
	return row
}

func failure(message string) Result {
	logger.Error(message)
	return Result{Success: false, Message: message}
}
