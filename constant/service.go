package constant

const (
	ServiceName    = "blog-mock-service"
	ServiceVersion = "1.0.0"
)

// ID 前缀
const (
	PostIDPrefix   = "post-"
	AuthorIDPrefix = "author-"
	ImageIDPrefix  = "image-"
)

// LocationPrefix 是创建帖子响应中 Location 头的前缀 (前端帖子页路由)。
const LocationPrefix = "/posts/"

// DefaultDogImageAPIURL 是随机狗狗图片 API，后台生成帖子配图以及透传路由都使用它。
const DefaultDogImageAPIURL = "https://dog.ceo/api/breeds/image/random"

// DefaultStatsCronSpec 存储统计日志任务的默认调度。
const DefaultStatsCronSpec = "@every 1m"
