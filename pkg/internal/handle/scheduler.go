package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/destvault/pkg/middleware"
)

// SchedulerJobs 返回所有调度器任务信息.
func SchedulerJobs(c *gin.Context) {
	sched := middleware.GetScheduler(c)
	if sched == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scheduler not initialized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": sched.GetJobInfos()})
}

// SchedulerRemoveJob 根据名称删除任务.
func SchedulerRemoveJob(c *gin.Context) {
	sched := middleware.GetScheduler(c)
	if sched == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "scheduler not initialized"})
		return
	}

	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing job name"})
		return
	}

	if err := sched.RemoveJobByName(name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "job removed"})
}
