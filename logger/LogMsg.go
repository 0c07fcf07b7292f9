package logger

const LoopStartMsg = "遊戲迴圈開始"
const LoopStopMsg = "遊戲迴圈結束 ticks:%d balls:%d"

const BallSpawnedMsg = "新增一顆球，目前球數：%d"
const BallRespawnedMsg = "%d 顆球出界，重新發球 (tick %d)"

const FrontendStartMsg = "啟動前端 %s (env:%s)"
const FrontendInitFailMsg = "前端 %s 初始化失敗: %v"

const ConfigLoadedMsg = "設定已載入 env:%s file:%s"
const KeymapLoadedMsg = "按鍵設定已載入 file:%s"

const HeadlessSummaryMsg = "headless 結束 frames:%d balls:%d"
