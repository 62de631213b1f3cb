package conf

type Bootstrap struct {
	Server *Server
	Studio *Studio
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

// Studio 生成引擎配置，字段与 pkg/config 一一对应
type Studio struct {
	Llm         *LLM         `json:"llm"`
	Image       *Image       `json:"image"`
	Log         *Log         `json:"log"`
	Concurrency *Concurrency `json:"concurrency"`
	Db          *DB          `json:"db"`
	Output      *Output      `json:"output"`
}

type LLM struct {
	BaseUrl string `json:"base_url"`
	ApiKey  string `json:"api_key"`
	Model   string `json:"model"`
}

type Image struct {
	Model string `json:"model"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}

type DB struct {
	Host     string `json:"host"`
	Port     int32  `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type Output struct {
	Dir string `json:"dir"`
}
